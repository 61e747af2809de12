package dto

import (
	"errors"
	"fmt"

	"jeopardytool/internal/domain"
)

// LegacyCategory is the pre-versioning category file: one JSON category per
// file with each answer wrapped in an object keyed by its variant name, e.g.
//
//	{"name": "Rivers", "answers": [{"Text": {"question": "...", "answer": "...", "double_jeopardy": false}}]}
type LegacyCategory struct {
	Name    string         `json:"name"`
	Answers []LegacyAnswer `json:"answers"`
}


// LegacyAnswer holds exactly one variant.
type LegacyAnswer struct {
	Text  *LegacyPayload `json:"Text,omitempty"`
	Image *LegacyPayload `json:"Image,omitempty"`
	Audio *LegacyPayload `json:"Audio,omitempty"`
	Video *LegacyPayload `json:"Video,omitempty"`
}

// LegacyPayload carries the fields of every legacy variant; the media
// variants name their path field after themselves.
type LegacyPayload struct {
	Question       string `json:"question"`
	Answer         string `json:"answer,omitempty"`
	Image          string `json:"image,omitempty"`
	Audio          string `json:"audio,omitempty"`
	Video          string `json:"video,omitempty"`
	DoubleJeopardy bool   `json:"double_jeopardy"`
}

var (
	errNoVariant       = errors.New("answer has no variant")
	errTooManyVariants = errors.New("answer has more than one variant")
)

// ToDomain converts a legacy category into the current model.
func (l *LegacyCategory) ToDomain() (*domain.Category, error) {
	c := domain.NewCategory(l.Name)
	for i, la := range l.Answers {
		a, err := la.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("answers[%d]: %w", i, err)
		}
		c.Answers = append(c.Answers, a)
	}
	return c, nil
}

// ToDomain converts the single populated variant.
func (l LegacyAnswer) ToDomain() (domain.Answer, error) {
	var (
		a     domain.Answer
		p     *LegacyPayload
		count int
	)
	if l.Text != nil {
		count++
		p = l.Text
		a = domain.NewTextAnswer(p.Question, p.Answer)
	}
	if l.Image != nil {
		count++
		p = l.Image
		a = domain.NewImageAnswer(p.Question, p.Image)
	}
	if l.Audio != nil {
		count++
		p = l.Audio
		a = domain.NewAudioAnswer(p.Question, p.Audio)
	}
	if l.Video != nil {
		count++
		p = l.Video
		a = domain.NewVideoAnswer(p.Question, p.Video)
	}
	switch count {
	case 0:
		return nil, errNoVariant
	case 1:
		domain.SetDoubleJeopardy(a, p.DoubleJeopardy)
		return a, nil
	default:
		return nil, errTooManyVariants
	}
}

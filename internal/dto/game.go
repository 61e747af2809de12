package dto

import (
	"errors"
	"fmt"

	"jeopardytool/internal/domain"
)

// DocumentVersion is the schema version written by this tool.
const DocumentVersion = 1

var errMissingEntry = errors.New("entry is missing")

// GameDocument is the on-disk representation of a game
type GameDocument struct {
	Version    int                `json:"version" yaml:"version"`
	ID         string             `json:"id,omitempty" yaml:"id,omitempty"`
	Title      string             `json:"title" yaml:"title"`
	Categories []CategoryDocument `json:"categories" yaml:"categories"`
}

// CategoryDocument is one column of a GameDocument
type CategoryDocument struct {
	Name    string           `json:"name" yaml:"name"`
	Answers []AnswerDocument `json:"answers" yaml:"answers"`
}

// AnswerDocument flattens every answer variant; Kind selects which payload
// field is meaningful (Answer for text, Path for the media kinds).
type AnswerDocument struct {
	Kind           domain.AnswerKind `json:"kind" yaml:"kind"`
	Question       string            `json:"question" yaml:"question"`
	Answer         string            `json:"answer,omitempty" yaml:"answer,omitempty"`
	Path           string            `json:"path,omitempty" yaml:"path,omitempty"`
	DoubleJeopardy bool              `json:"double_jeopardy" yaml:"double_jeopardy"`
}

// NewGameDocument converts a domain game to its document form. Nil
// categories or answers cannot be encoded and are reported by position.
func NewGameDocument(g *domain.Game) (*GameDocument, error) {
	doc := &GameDocument{
		Version:    DocumentVersion,
		ID:         g.ID,
		Title:      g.Title,
		Categories: make([]CategoryDocument, len(g.Categories)),
	}
	for i, c := range g.Categories {
		if c == nil {
			return nil, fmt.Errorf("categories[%d]: %w", i, errMissingEntry)
		}
		cd, err := NewCategoryDocument(c)
		if err != nil {
			return nil, fmt.Errorf("categories[%d]: %w", i, err)
		}
		doc.Categories[i] = cd
	}
	return doc, nil
}

// NewCategoryDocument converts a domain category to its document form.
func NewCategoryDocument(c *domain.Category) (CategoryDocument, error) {
	if c == nil {
		return CategoryDocument{}, errMissingEntry
	}
	doc := CategoryDocument{Name: c.Name, Answers: make([]AnswerDocument, len(c.Answers))}
	for i, a := range c.Answers {
		if a == nil {
			return CategoryDocument{}, fmt.Errorf("answers[%d]: %w", i, errMissingEntry)
		}
		var v answerDocumentVisitor
		a.Accept(&v)
		doc.Answers[i] = v.doc
	}
	return doc, nil
}

type answerDocumentVisitor struct {
	doc AnswerDocument
}

func (v *answerDocumentVisitor) VisitText(a *domain.TextAnswer) {
	v.doc = AnswerDocument{Kind: domain.AnswerKindText, Question: a.Question, Answer: a.Answer, DoubleJeopardy: a.DoubleJeopardy}
}

func (v *answerDocumentVisitor) VisitImage(a *domain.ImageAnswer) {
	v.doc = AnswerDocument{Kind: domain.AnswerKindImage, Question: a.Question, Path: a.Image, DoubleJeopardy: a.DoubleJeopardy}
}

func (v *answerDocumentVisitor) VisitAudio(a *domain.AudioAnswer) {
	v.doc = AnswerDocument{Kind: domain.AnswerKindAudio, Question: a.Question, Path: a.Audio, DoubleJeopardy: a.DoubleJeopardy}
}

func (v *answerDocumentVisitor) VisitVideo(a *domain.VideoAnswer) {
	v.doc = AnswerDocument{Kind: domain.AnswerKindVideo, Question: a.Question, Path: a.Video, DoubleJeopardy: a.DoubleJeopardy}
}

// ToDomain converts the document back into a domain game.
func (d *GameDocument) ToDomain() (*domain.Game, error) {
	if d.Version != 0 && d.Version != DocumentVersion {
		return nil, fmt.Errorf("unsupported document version %d", d.Version)
	}
	g := &domain.Game{ID: d.ID, Title: d.Title}
	for i, cd := range d.Categories {
		c, err := cd.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("categories[%d]: %w", i, err)
		}
		g.Categories = append(g.Categories, c)
	}
	return g, nil
}

// ToDomain converts the document back into a domain category.
func (d CategoryDocument) ToDomain() (*domain.Category, error) {
	c := domain.NewCategory(d.Name)
	for i, ad := range d.Answers {
		a, err := ad.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("answers[%d]: %w", i, err)
		}
		c.Answers = append(c.Answers, a)
	}
	return c, nil
}

// ToDomain converts the document back into a domain answer.
func (d AnswerDocument) ToDomain() (domain.Answer, error) {
	payload := d.Path
	if d.Kind == domain.AnswerKindText {
		payload = d.Answer
	}
	a, err := domain.NewAnswer(d.Kind, d.Question, payload)
	if err != nil {
		return nil, err
	}
	domain.SetDoubleJeopardy(a, d.DoubleJeopardy)
	return a, nil
}

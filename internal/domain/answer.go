package domain

import "fmt"

// AnswerKind names the payload variant of an Answer.
type AnswerKind string

const (
	AnswerKindText  AnswerKind = "text"
	AnswerKindImage AnswerKind = "image"
	AnswerKindAudio AnswerKind = "audio"
	AnswerKindVideo AnswerKind = "video"
)

// AnswerKinds lists every supported kind in display order.
var AnswerKinds = []AnswerKind{AnswerKindText, AnswerKindImage, AnswerKindAudio, AnswerKindVideo}

// ParseAnswerKind converts a (case-sensitive) kind name.
func ParseAnswerKind(s string) (AnswerKind, error) {
	for _, k := range AnswerKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown answer kind %q", s)
}

// Answer is one clue on the board. The set of implementations is closed:
// TextAnswer, ImageAnswer, AudioAnswer and VideoAnswer.
type Answer interface {
	Kind() AnswerKind
	// Prompt returns the question the contestant has to come up with.
	Prompt() string
	IsDoubleJeopardy() bool
	IsValid() bool
	Accept(v AnswerVisitor)
	Clone() Answer

	base() *answerBase
}

// AnswerVisitor must handle every Answer variant. Adding a variant adds a
// method here, which breaks every visitor until it is handled.
type AnswerVisitor interface {
	VisitText(a *TextAnswer)
	VisitImage(a *ImageAnswer)
	VisitAudio(a *AudioAnswer)
	VisitVideo(a *VideoAnswer)
}

type answerBase struct {
	Question       string
	DoubleJeopardy bool
}

func (b *answerBase) base() *answerBase     { return b }
func (b *answerBase) Prompt() string         { return b.Question }
func (b *answerBase) IsDoubleJeopardy() bool { return b.DoubleJeopardy }

// IsValid is structural only; content rules live in the validation package.
func (b *answerBase) IsValid() bool { return true }

// TextAnswer shows Answer as text on the board.
type TextAnswer struct {
	answerBase
	Answer string
}

// NewTextAnswer creates a new TextAnswer instance
func NewTextAnswer(question, answer string) *TextAnswer {
	return &TextAnswer{answerBase: answerBase{Question: question}, Answer: answer}
}

func (a *TextAnswer) Kind() AnswerKind       { return AnswerKindText }
func (a *TextAnswer) Accept(v AnswerVisitor) { v.VisitText(a) }
func (a *TextAnswer) Clone() Answer          { c := *a; return &c }

// ImageAnswer shows the image at Image.
type ImageAnswer struct {
	answerBase
	Image string
}

// NewImageAnswer creates an ImageAnswer for the image file at image.
func NewImageAnswer(question, image string) *ImageAnswer {
	return &ImageAnswer{answerBase: answerBase{Question: question}, Image: image}
}

func (a *ImageAnswer) Kind() AnswerKind       { return AnswerKindImage }
func (a *ImageAnswer) Accept(v AnswerVisitor) { v.VisitImage(a) }
func (a *ImageAnswer) Clone() Answer          { c := *a; return &c }

// AudioAnswer plays the audio file at Audio.
type AudioAnswer struct {
	answerBase
	Audio string
}

// NewAudioAnswer creates an AudioAnswer for the audio file at audio.
func NewAudioAnswer(question, audio string) *AudioAnswer {
	return &AudioAnswer{answerBase: answerBase{Question: question}, Audio: audio}
}

func (a *AudioAnswer) Kind() AnswerKind       { return AnswerKindAudio }
func (a *AudioAnswer) Accept(v AnswerVisitor) { v.VisitAudio(a) }
func (a *AudioAnswer) Clone() Answer          { c := *a; return &c }

// VideoAnswer plays the video file at Video.
type VideoAnswer struct {
	answerBase
	Video string
}

// NewVideoAnswer creates a VideoAnswer for the video file at video.
func NewVideoAnswer(question, video string) *VideoAnswer {
	return &VideoAnswer{answerBase: answerBase{Question: question}, Video: video}
}

func (a *VideoAnswer) Kind() AnswerKind       { return AnswerKindVideo }
func (a *VideoAnswer) Accept(v AnswerVisitor) { v.VisitVideo(a) }
func (a *VideoAnswer) Clone() Answer          { c := *a; return &c }

// NewAnswer builds an answer of the given kind. payload is the answer text
// for text answers and the asset path for the media kinds.
func NewAnswer(kind AnswerKind, question, payload string) (Answer, error) {
	switch kind {
	case AnswerKindText:
		return NewTextAnswer(question, payload), nil
	case AnswerKindImage:
		return NewImageAnswer(question, payload), nil
	case AnswerKindAudio:
		return NewAudioAnswer(question, payload), nil
	case AnswerKindVideo:
		return NewVideoAnswer(question, payload), nil
	default:
		return nil, fmt.Errorf("unknown answer kind %q", kind)
	}
}

// Payload returns the text answer or the asset path, whichever the variant carries.
func Payload(a Answer) string {
	var p payloadVisitor
	a.Accept(&p)
	return string(p)
}

type payloadVisitor string

func (p *payloadVisitor) VisitText(a *TextAnswer)   { *p = payloadVisitor(a.Answer) }
func (p *payloadVisitor) VisitImage(a *ImageAnswer) { *p = payloadVisitor(a.Image) }
func (p *payloadVisitor) VisitAudio(a *AudioAnswer) { *p = payloadVisitor(a.Audio) }
func (p *payloadVisitor) VisitVideo(a *VideoAnswer) { *p = payloadVisitor(a.Video) }

// SetDoubleJeopardy sets the flag on any variant.
func SetDoubleJeopardy(a Answer, on bool) {
	a.base().DoubleJeopardy = on
}

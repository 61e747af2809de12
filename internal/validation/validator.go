package validation

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"jeopardytool/internal/config"
	"jeopardytool/internal/domain"
)

var mediaExtensions = map[domain.AnswerKind][]string{
	domain.AnswerKindImage: {".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg"},
	domain.AnswerKindAudio: {".mp3", ".wav", ".ogg", ".flac", ".m4a"},
	domain.AnswerKindVideo: {".mp4", ".webm", ".mov", ".mkv"},
}

// Validator applies content rules on top of the structural 5x5 check:
// non-empty names and prompts, known media extensions, and optionally that
// referenced assets exist.
type Validator struct {
	checkAssets bool
	assetRoot   string
	stat        func(string) (os.FileInfo, error)
}

// NewValidator creates a validator instance
func NewValidator(cfg config.ValidationConfig) *Validator {
	return &Validator{
		checkAssets: cfg.CheckAssets,
		assetRoot:   cfg.AssetRoot,
		stat:        os.Stat,
	}
}

// ValidateGame returns structural and content violations for the whole game.
func (v *Validator) ValidateGame(g *domain.Game) domain.ValidationErrors {
	var errs domain.ValidationErrors
	var structural domain.ValidationErrors
	if errors.As(g.Validate(), &structural) {
		errs = append(errs, structural...)
	}

	seen := make(map[string]int, len(g.Categories))
	for i, c := range g.Categories {
		// reported by Game.Validate above
		if c == nil {
			continue
		}
		field := fmt.Sprintf("categories[%d]", i)
		name := strings.TrimSpace(c.Name)
		if name == "" {
			errs = append(errs, domain.NewMissingFieldError(field+".name"))
		} else if first, dup := seen[strings.ToLower(name)]; dup {
			errs = append(errs, domain.NewValidationError(field+".name",
				fmt.Sprintf("duplicates the name of categories[%d]", first)))
		} else {
			seen[strings.ToLower(name)] = i
		}
		for j, a := range c.Answers {
			if a == nil {
				continue
			}
			errs = append(errs, v.ValidateAnswer(a).Prefix(fmt.Sprintf("%s.answers[%d]", field, j))...)
		}
	}
	return errs
}

// ValidateAnswer returns the content violations of a single answer.
func (v *Validator) ValidateAnswer(a domain.Answer) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(a.Prompt()) == "" {
		errs = append(errs, domain.NewMissingFieldError("question"))
	}
	rv := &ruleVisitor{v: v}
	a.Accept(rv)
	return append(errs, rv.errs...)
}

type ruleVisitor struct {
	v    *Validator
	errs domain.ValidationErrors
}

func (r *ruleVisitor) VisitText(a *domain.TextAnswer) {
	if strings.TrimSpace(a.Answer) == "" {
		r.errs = append(r.errs, domain.NewMissingFieldError("answer"))
	}
}

func (r *ruleVisitor) VisitImage(a *domain.ImageAnswer) { r.media(a.Kind(), a.Image) }
func (r *ruleVisitor) VisitAudio(a *domain.AudioAnswer) { r.media(a.Kind(), a.Audio) }
func (r *ruleVisitor) VisitVideo(a *domain.VideoAnswer) { r.media(a.Kind(), a.Video) }

func (r *ruleVisitor) media(kind domain.AnswerKind, path string) {
	if strings.TrimSpace(path) == "" {
		r.errs = append(r.errs, domain.NewMissingFieldError("path"))
		return
	}
	if !hasExtension(path, mediaExtensions[kind]) {
		r.errs = append(r.errs, domain.NewValidationError("path",
			fmt.Sprintf("%q is not a recognized %s file (want one of %s)", path, kind, strings.Join(mediaExtensions[kind], ", "))))
		return
	}
	if r.v.checkAssets {
		resolved := path
		if !filepath.IsAbs(resolved) && r.v.assetRoot != "" {
			resolved = filepath.Join(r.v.assetRoot, resolved)
		}
		if _, err := r.v.stat(resolved); err != nil {
			r.errs = append(r.errs, domain.NewValidationError("path", fmt.Sprintf("asset %q is not readable: %v", resolved, err)))
		}
	}
}

func hasExtension(path string, allowed []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range allowed {
		if ext == e {
			return true
		}
	}
	return false
}

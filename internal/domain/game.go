package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	// CategoriesPerGame is the number of categories on a valid board.
	CategoriesPerGame = 5
	// AnswersPerCategory is the number of answers in a valid category.
	AnswersPerCategory = 5
	// DoubleJeopardyPicks is how many entries each Double Jeopardy pass selects
	// per level: categories in a game, then answers in each chosen category.
	DoubleJeopardyPicks = 2
)

// Game represents one Jeopardy board
type Game struct {
	ID         string
	Title      string
	Categories []*Category
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewGame creates an empty Game with no categories.
func NewGame(title string) *Game {
	now := time.Now()
	return &Game{
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddCategory appends a category and returns the game for chaining.
func (g *Game) AddCategory(c *Category) *Game {
	g.Categories = append(g.Categories, c)
	return g
}

// IsValid checks whether a game has 5 categories and every category has 5 answers
func (g *Game) IsValid() bool {
	if len(g.Categories) != CategoriesPerGame {
		return false
	}
	for _, c := range g.Categories {
		if !c.IsValid() {
			return false
		}
	}
	return true
}

// Validate reports every structural violation, or nil for a valid game.
func (g *Game) Validate() error {
	var errs ValidationErrors
	if len(g.Categories) != CategoriesPerGame {
		errs = append(errs, NewCountError("categories", len(g.Categories), CategoriesPerGame))
	}
	for i, c := range g.Categories {
		if c == nil {
			errs = append(errs, NewMissingFieldError(fmt.Sprintf("categories[%d]", i)))
			continue
		}
		if err := c.validate(); len(err) > 0 {
			errs = append(errs, err.Prefix(fmt.Sprintf("categories[%d]", i))...)
		}
	}
	return errs.Err()
}

// DoubleJeopardy randomly chooses two categories and lets each of them flag
// two of its answers. Existing flags are never cleared, so calling it again
// can only add flags.
func (g *Game) DoubleJeopardy(rng Shuffler) error {
	if err := g.checkDoubleJeopardy(); err != nil {
		return err
	}
	for _, i := range pickDistinct(rng, len(g.Categories), DoubleJeopardyPicks) {
		if err := g.Categories[i].DoubleJeopardy(rng); err != nil {
			return err
		}
	}
	return nil
}

// RerollDoubleJeopardy clears all flags before assigning a fresh pair.
func (g *Game) RerollDoubleJeopardy(rng Shuffler) error {
	if err := g.checkDoubleJeopardy(); err != nil {
		return err
	}
	g.ClearDoubleJeopardy()
	return g.DoubleJeopardy(rng)
}

// checkDoubleJeopardy fails unless every category could host the flags, so a
// failed call leaves the game untouched.
func (g *Game) checkDoubleJeopardy() error {
	if len(g.Categories) < DoubleJeopardyPicks {
		return NewInvalidGameError(
			fmt.Sprintf("double jeopardy needs at least %d categories, game has %d", DoubleJeopardyPicks, len(g.Categories)), nil)
	}
	for i, c := range g.Categories {
		if c == nil {
			return NewInvalidGameError(fmt.Sprintf("category %d is missing", i), nil)
		}
		if err := c.checkDoubleJeopardy(); err != nil {
			return err
		}
	}
	return nil
}

// ClearDoubleJeopardy resets every flag in the game.
func (g *Game) ClearDoubleJeopardy() {
	for _, c := range g.Categories {
		c.ClearDoubleJeopardy()
	}
}

// DoubleJeopardyCount returns the number of flagged answers.
func (g *Game) DoubleJeopardyCount() int {
	n := 0
	for _, c := range g.Categories {
		n += c.DoubleJeopardyCount()
	}
	return n
}

// Clone returns a deep copy of the game.
func (g *Game) Clone() *Game {
	c := *g
	c.Categories = make([]*Category, len(g.Categories))
	for i, cat := range g.Categories {
		c.Categories[i] = cat.Clone()
	}
	return &c
}

// MatchesPrefix reports whether the ID or title starts with prefix
// (title comparison ignores case). An empty prefix matches every game.
func (g *Game) MatchesPrefix(prefix string) bool {
	if prefix == "" {
		return true
	}
	return strings.HasPrefix(g.ID, prefix) ||
		strings.HasPrefix(strings.ToLower(g.Title), strings.ToLower(prefix))
}

// Category is a named column of answers
type Category struct {
	Name    string
	Answers []Answer
}

// NewCategory creates a new Category instance
func NewCategory(name string, answers ...Answer) *Category {
	return &Category{Name: name, Answers: answers}
}

// IsValid checks whether a category has 5 answers
func (c *Category) IsValid() bool {
	if c == nil || len(c.Answers) != AnswersPerCategory {
		return false
	}
	for _, a := range c.Answers {
		if a == nil || !a.IsValid() {
			return false
		}
	}
	return true
}

// Validate reports every structural violation, or nil for a valid category.
func (c *Category) Validate() error {
	if c == nil {
		return ValidationErrors{NewMissingFieldError("category")}
	}
	return c.validate().Err()
}

func (c *Category) validate() ValidationErrors {
	var errs ValidationErrors
	if len(c.Answers) != AnswersPerCategory {
		errs = append(errs, NewCountError("answers", len(c.Answers), AnswersPerCategory))
	}
	for i, a := range c.Answers {
		if a == nil {
			errs = append(errs, NewMissingFieldError(fmt.Sprintf("answers[%d]", i)))
			continue
		}
		if !a.IsValid() {
			errs = append(errs, NewValidationError(fmt.Sprintf("answers[%d]", i), "is invalid"))
		}
	}
	return errs
}

// DoubleJeopardy randomly flags two answers of the category.
func (c *Category) DoubleJeopardy(rng Shuffler) error {
	if err := c.checkDoubleJeopardy(); err != nil {
		return err
	}
	for _, i := range pickDistinct(rng, len(c.Answers), DoubleJeopardyPicks) {
		SetDoubleJeopardy(c.Answers[i], true)
	}
	return nil
}

func (c *Category) checkDoubleJeopardy() error {
	if len(c.Answers) < DoubleJeopardyPicks {
		return NewInvalidCategoryError(c.Name,
			fmt.Sprintf("double jeopardy needs at least %d answers, category has %d", DoubleJeopardyPicks, len(c.Answers)))
	}
	for i, a := range c.Answers {
		if a == nil {
			return NewInvalidCategoryError(c.Name, fmt.Sprintf("answer %d is missing", i))
		}
	}
	return nil
}

// ClearDoubleJeopardy resets every flag in the category.
func (c *Category) ClearDoubleJeopardy() {
	if c == nil {
		return
	}
	for _, a := range c.Answers {
		if a == nil {
			continue
		}
		SetDoubleJeopardy(a, false)
	}
}

// DoubleJeopardyCount returns the number of flagged answers.
func (c *Category) DoubleJeopardyCount() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, a := range c.Answers {
		if a != nil && a.IsDoubleJeopardy() {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the category.
func (c *Category) Clone() *Category {
	if c == nil {
		return nil
	}
	answers := make([]Answer, len(c.Answers))
	for i, a := range c.Answers {
		if a != nil {
			answers[i] = a.Clone()
		}
	}
	return &Category{Name: c.Name, Answers: answers}
}

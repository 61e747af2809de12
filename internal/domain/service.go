package domain

import "context"

// GameService defines the use cases exposed on the command line
type GameService interface {
	// Show returns every stored game whose ID or title starts with prefix
	Show(ctx context.Context, opts ShowOptions) ([]*GameReport, error)

	// Create builds a 5x5 skeleton game and stores it
	Create(ctx context.Context, opts CreateOptions) (*Game, error)

	// Convert assembles legacy category files into a current-format game
	Convert(ctx context.Context, opts ConvertOptions) (*Game, error)
}

// GameRepository defines the interface for game persistence
type GameRepository interface {
	// List returns games matching prefix (see Game.MatchesPrefix), ordered by ID
	List(ctx context.Context, prefix string) ([]*Game, error)

	// GetByID retrieves a game by its ID, or a GAME_NOT_FOUND error
	GetByID(ctx context.Context, id string) (*Game, error)

	// Save inserts or replaces a game. An empty ID is assigned on insert.
	Save(ctx context.Context, game *Game) error
}

// ShowOptions controls GameService.Show
type ShowOptions struct {
	Prefix         string
	DoubleJeopardy bool
	Strict         bool
	Rand           Shuffler
}

// CreateOptions controls GameService.Create
type CreateOptions struct {
	Title          string
	Categories     []string
	Kind           AnswerKind
	DoubleJeopardy bool
	Rand           Shuffler
}

// ConvertOptions controls GameService.Convert
type ConvertOptions struct {
	Title  string
	Inputs []string
	// Output is a file path; empty means save to the repository.
	Output string
}

// GameReport pairs a game with the outcome of validating it.
type GameReport struct {
	Game   *Game
	Errors ValidationErrors
}

// Valid reports whether no violation was found.
func (r *GameReport) Valid() bool {
	return len(r.Errors) == 0
}

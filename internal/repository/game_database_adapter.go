package repository

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"time"

	"jeopardytool/internal/domain"
	"jeopardytool/internal/dto"
	"jeopardytool/internal/repository/models"
	"jeopardytool/internal/util"
)

const (
	selectGamesQuery = `SELECT id, title, document, created_at, updated_at FROM games ORDER BY id`

	selectGameByIDQuery = `SELECT id, title, document, created_at, updated_at FROM games WHERE id = ?`

	upsertGameQuery = `INSERT INTO games (id, title, document, created_at, updated_at)
VALUES (:id, :title, :document, :created_at, :updated_at)
ON CONFLICT(id) DO UPDATE SET title = excluded.title, document = excluded.document, updated_at = excluded.updated_at`
)

// GameDatabaseAdapter stores games in the SQLite games table.
type GameDatabaseAdapter struct {
	db  DBTX
	now func() time.Time
}

// NewGameDatabaseAdapter creates a new instance of GameDatabaseAdapter
func NewGameDatabaseAdapter(db DBTX) domain.GameRepository {
	return &GameDatabaseAdapter{db: db, now: time.Now}
}

// List returns every stored game matching prefix
func (r *GameDatabaseAdapter) List(ctx context.Context, prefix string) ([]*domain.Game, error) {
	var rows []models.Game
	if err := r.db.SelectContext(ctx, &rows, selectGamesQuery); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*domain.Game{}, nil
		}
		return nil, domain.NewStorageError("failed to list games", err)
	}

	games := make([]*domain.Game, 0, len(rows))
	for i := range rows {
		g, err := convertToDomainGame(&rows[i])
		if err != nil {
			return nil, err
		}
		if g.MatchesPrefix(prefix) {
			games = append(games, g)
		}
	}
	return games, nil
}

// GetByID retrieves a game by its ID
func (r *GameDatabaseAdapter) GetByID(ctx context.Context, id string) (*domain.Game, error) {
	var row models.Game
	if err := r.db.GetContext(ctx, &row, selectGameByIDQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewGameNotFoundError(id)
		}
		return nil, domain.NewStorageError("failed to load game "+id, err)
	}
	return convertToDomainGame(&row)
}

// Save inserts or replaces a game
func (r *GameDatabaseAdapter) Save(ctx context.Context, game *domain.Game) error {
	now := r.now().UTC()
	if game.ID == "" {
		game.ID = util.NewULID()
	}
	if game.CreatedAt.IsZero() {
		game.CreatedAt = now
	}
	game.UpdatedAt = now

	row, err := convertToModelGame(game)
	if err != nil {
		return err
	}
	if _, err := r.db.NamedExecContext(ctx, upsertGameQuery, row); err != nil {
		return domain.NewStorageError("failed to save game "+game.ID, err)
	}
	return nil
}

// Helper functions for converting between domain and model types
func convertToDomainGame(row *models.Game) (*domain.Game, error) {
	g, err := dto.DecodeGame(bytes.NewReader([]byte(row.Document)), dto.FormatJSON, "game "+row.ID)
	if err != nil {
		return nil, err
	}
	g.ID = row.ID
	g.Title = util.StringOrEmpty(row.Title)
	g.CreatedAt = row.CreatedAt
	g.UpdatedAt = row.UpdatedAt
	return g, nil
}

func convertToModelGame(g *domain.Game) (*models.Game, error) {
	var buf bytes.Buffer
	if err := dto.EncodeGame(&buf, g, dto.FormatJSON); err != nil {
		return nil, domain.NewStorageError("failed to encode game "+g.ID, err)
	}
	return &models.Game{
		ID:        g.ID,
		Title:     util.NullString(g.Title),
		Document:  buf.String(),
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}, nil
}

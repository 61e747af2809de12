package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"jeopardytool/internal/config"
	"jeopardytool/internal/domain"
	"jeopardytool/internal/dto"
	"jeopardytool/internal/util"
	"jeopardytool/internal/validation"

	"go.uber.org/zap"
)

const (
	defaultTitle          = "Untitled game"
	defaultConvertedTitle = "Converted game"
)

// gameService implements the domain.GameService interface.
type gameService struct {
	repo      domain.GameRepository
	validator *validation.Validator
	cfg       *config.Config
	logger    *zap.Logger
}

// NewGameService creates a new instance of gameService.
func NewGameService(
	repo domain.GameRepository,
	validator *validation.Validator,
	cfg *config.Config,
	logger *zap.Logger,
) domain.GameService {
	return &gameService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
		logger:    logger,
	}
}

func randOrDefault(rng domain.Shuffler) domain.Shuffler {
	if rng == nil {
		return domain.NewRandomSource()
	}
	return rng
}

// Show loads the games matching opts.Prefix and validates each of them. With
// opts.DoubleJeopardy a fresh assignment is rolled in memory first; nothing
// is written back.
func (s *gameService) Show(ctx context.Context, opts domain.ShowOptions) ([]*domain.GameReport, error) {
	games, err := s.findGames(ctx, opts.Prefix)
	if err != nil {
		s.logger.Error("Failed to list games", zap.String("prefix", opts.Prefix), zap.Error(err))
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	if len(games) == 0 {
		return nil, domain.NewGameNotFoundError(opts.Prefix)
	}

	strict := opts.Strict || s.cfg.Validation.Strict
	rng := randOrDefault(opts.Rand)

	reports := make([]*domain.GameReport, 0, len(games))
	for _, g := range games {
		report := &domain.GameReport{Game: g}

		if opts.DoubleJeopardy {
			if err := g.RerollDoubleJeopardy(rng); err != nil {
				report.Errors = append(report.Errors, domain.NewValidationError("double_jeopardy", err.Error()))
			}
		}

		if strict {
			report.Errors = append(report.Errors, s.validator.ValidateGame(g)...)
		} else {
			var structural domain.ValidationErrors
			if errors.As(g.Validate(), &structural) {
				report.Errors = append(report.Errors, structural...)
			}
		}

		s.logger.Debug("Validated game",
			zap.String("game_id", g.ID),
			zap.Bool("valid", report.Valid()),
			zap.Int("violations", len(report.Errors)),
			zap.Bool("strict", strict),
		)
		reports = append(reports, report)
	}
	return reports, nil
}

// findGames loads a game directly when prefix is a complete ID and scans the
// library otherwise.
func (s *gameService) findGames(ctx context.Context, prefix string) ([]*domain.Game, error) {
	if util.IsULID(prefix) {
		s.logger.Debug("Loading game by ID", zap.String("game_id", prefix))
		game, err := s.repo.GetByID(ctx, prefix)
		if err == nil {
			return []*domain.Game{game}, nil
		}
		if !errors.Is(err, domain.ErrKindGameNotFound) {
			return nil, err
		}
	}
	s.logger.Debug("Listing games", zap.String("prefix", prefix))
	return s.repo.List(ctx, prefix)
}

// Create builds a 5x5 skeleton game with empty prompts and stores it.
func (s *gameService) Create(ctx context.Context, opts domain.CreateOptions) (*domain.Game, error) {
	if len(opts.Categories) > domain.CategoriesPerGame {
		return nil, domain.NewInvalidGameError(
			fmt.Sprintf("a game has exactly %d categories, got %d names", domain.CategoriesPerGame, len(opts.Categories)), nil)
	}
	kind := opts.Kind
	if kind == "" {
		kind = domain.AnswerKindText
	}

	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = defaultTitle
	}

	game := domain.NewGame(title)
	for i := 0; i < domain.CategoriesPerGame; i++ {
		name := fmt.Sprintf("Category %d", i+1)
		if i < len(opts.Categories) && strings.TrimSpace(opts.Categories[i]) != "" {
			name = strings.TrimSpace(opts.Categories[i])
		}
		category := domain.NewCategory(name)
		for j := 0; j < domain.AnswersPerCategory; j++ {
			answer, err := domain.NewAnswer(kind, "", "")
			if err != nil {
				return nil, domain.NewInvalidGameError("cannot create answers", err)
			}
			category.Answers = append(category.Answers, answer)
		}
		game.AddCategory(category)
	}

	if opts.DoubleJeopardy {
		if err := game.RerollDoubleJeopardy(randOrDefault(opts.Rand)); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Save(ctx, game); err != nil {
		s.logger.Error("Failed to save new game", zap.String("title", title), zap.Error(err))
		return nil, fmt.Errorf("failed to save game: %w", err)
	}
	s.logger.Info("Created game",
		zap.String("game_id", game.ID),
		zap.String("title", game.Title),
		zap.String("kind", string(kind)),
	)
	return game, nil
}

// Convert reads legacy category files, in argument order, into one game and
// writes it to opts.Output or to the repository.
func (s *gameService) Convert(ctx context.Context, opts domain.ConvertOptions) (*domain.Game, error) {
	if len(opts.Inputs) == 0 {
		return nil, domain.NewInvalidGameError("convert needs at least one legacy category file", nil)
	}

	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = defaultConvertedTitle
	}
	game := domain.NewGame(title)

	for _, path := range opts.Inputs {
		category, err := readLegacyCategory(path)
		if err != nil {
			s.logger.Error("Failed to read legacy category", zap.String("path", path), zap.Error(err))
			return nil, err
		}
		if err := category.Validate(); err != nil {
			return nil, domain.NewInvalidCategoryError(category.Name, fmt.Sprintf("%s: %v", path, err))
		}
		s.logger.Debug("Converted category",
			zap.String("path", path),
			zap.String("category", category.Name),
			zap.Int("double_jeopardy", category.DoubleJeopardyCount()),
		)
		game.AddCategory(category)
	}

	if err := game.Validate(); err != nil {
		s.logger.Warn("Converted game is incomplete", zap.String("title", title), zap.Error(err))
	}

	if opts.Output == "" {
		if err := s.repo.Save(ctx, game); err != nil {
			return nil, fmt.Errorf("failed to save game: %w", err)
		}
		s.logger.Info("Converted game saved to library", zap.String("game_id", game.ID), zap.Int("categories", len(game.Categories)))
		return game, nil
	}

	if err := writeGameFile(opts.Output, game); err != nil {
		return nil, err
	}
	s.logger.Info("Converted game written", zap.String("path", opts.Output), zap.String("game_id", game.ID))
	return game, nil
}

func readLegacyCategory(path string) (*domain.Category, error) {
	format, err := dto.FormatFromPath(path)
	if err != nil {
		return nil, domain.NewDecodeError(path, err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, domain.NewDecodeError(path, err)
	}
	defer f.Close()
	return dto.DecodeLegacyCategory(f, format, path)
}

func writeGameFile(path string, game *domain.Game) error {
	format, err := dto.FormatFromPath(path)
	if err != nil {
		return domain.NewStorageError("cannot write "+path, err)
	}
	if game.ID == "" {
		game.ID = util.NewULID()
	}

	var buf bytes.Buffer
	if err := dto.EncodeGame(&buf, game, format); err != nil {
		return domain.NewStorageError("failed to encode game "+game.ID, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return domain.NewStorageError("failed to create "+dir, err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return domain.NewStorageError("failed to write "+path, err)
	}
	return nil
}

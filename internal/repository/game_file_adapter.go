package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"jeopardytool/internal/domain"
	"jeopardytool/internal/dto"
	"jeopardytool/internal/util"

	"golang.org/x/sync/errgroup"
)

// GameFileAdapter stores one game document per file in a directory.
// The file name (without extension) is the game ID.
type GameFileAdapter struct {
	dir    string
	format dto.Format
	now    func() time.Time
}

// NewGameFileAdapter creates a repository over dir. New games are written
// in format; existing files are read in whichever format their extension names.
func NewGameFileAdapter(dir string, format dto.Format) domain.GameRepository {
	return &GameFileAdapter{dir: dir, format: format, now: time.Now}
}

var documentExtensions = []string{".yaml", ".yml", ".json"}

func isDocument(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range documentExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// maxParallelReads bounds how many documents List decodes at once.
const maxParallelReads = 8

// List returns every game in the directory matching prefix, ordered by ID
func (r *GameFileAdapter) List(ctx context.Context, prefix string) ([]*domain.Game, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []*domain.Game{}, nil
		}
		return nil, domain.NewStorageError("failed to read library directory "+r.dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !isDocument(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(r.dir, e.Name()))
	}

	loaded := make([]*domain.Game, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelReads)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			game, err := r.readFile(path)
			if err != nil {
				return err
			}
			loaded[i] = game
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	games := []*domain.Game{}
	for _, game := range loaded {
		if game.MatchesPrefix(prefix) {
			games = append(games, game)
		}
	}
	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	return games, nil
}

// GetByID reads the document named after id
func (r *GameFileAdapter) GetByID(ctx context.Context, id string) (*domain.Game, error) {
	if path := r.existingPath(id); path != "" {
		return r.readFile(path)
	}
	return nil, domain.NewGameNotFoundError(id)
}

// Save writes the game to <dir>/<id>.<format>, replacing any existing
// document for the same ID.
func (r *GameFileAdapter) Save(ctx context.Context, game *domain.Game) error {
	if game.ID == "" {
		game.ID = util.NewULID()
	}
	if strings.ContainsAny(game.ID, `/\`) {
		return domain.NewStorageError(fmt.Sprintf("invalid game id %q", game.ID), nil)
	}
	now := r.now().UTC()
	if game.CreatedAt.IsZero() {
		game.CreatedAt = now
	}
	game.UpdatedAt = now

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return domain.NewStorageError("failed to create library directory "+r.dir, err)
	}

	var buf bytes.Buffer
	if err := dto.EncodeGame(&buf, game, r.format); err != nil {
		return domain.NewStorageError("failed to encode game "+game.ID, err)
	}

	target := filepath.Join(r.dir, game.ID+r.format.Extension())
	if err := writeFileAtomic(target, buf.Bytes()); err != nil {
		return domain.NewStorageError("failed to write "+target, err)
	}

	// drop a stale copy stored under another extension
	for _, ext := range documentExtensions {
		old := filepath.Join(r.dir, game.ID+ext)
		if old == target {
			continue
		}
		if err := os.Remove(old); err != nil && !errors.Is(err, os.ErrNotExist) {
			return domain.NewStorageError("failed to remove "+old, err)
		}
	}
	return nil
}

func (r *GameFileAdapter) existingPath(id string) string {
	target := filepath.Join(r.dir, id+r.format.Extension())
	if _, err := os.Stat(target); err == nil {
		return target
	}
	for _, ext := range documentExtensions {
		path := filepath.Join(r.dir, id+ext)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func (r *GameFileAdapter) readFile(path string) (*domain.Game, error) {
	format, err := dto.FormatFromPath(path)
	if err != nil {
		return nil, domain.NewDecodeError(path, err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, domain.NewStorageError("failed to open "+path, err)
	}
	defer f.Close()

	g, err := dto.DecodeGame(f, format, path)
	if err != nil {
		return nil, err
	}
	if g.ID == "" {
		g.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if info, err := f.Stat(); err == nil {
		g.CreatedAt = info.ModTime()
		g.UpdatedAt = info.ModTime()
	}
	return g, nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

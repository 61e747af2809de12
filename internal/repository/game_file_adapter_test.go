package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"jeopardytool/internal/domain"
	"jeopardytool/internal/dto"
	"jeopardytool/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameFileAdapter_SaveAndGet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "library")
	repo := NewGameFileAdapter(dir, dto.FormatYAML)
	ctx := context.Background()

	game := newTestGame("", "Friday Night")
	domain.SetDoubleJeopardy(game.Categories[1].Answers[3], true)

	require.NoError(t, repo.Save(ctx, game))
	require.True(t, util.IsULID(game.ID))
	assert.FileExists(t, filepath.Join(dir, game.ID+".yaml"))

	got, err := repo.GetByID(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, game.ID, got.ID)
	assert.Equal(t, "Friday Night", got.Title)
	assert.True(t, got.IsValid())
	assert.True(t, got.Categories[1].Answers[3].IsDoubleJeopardy())
	assert.Equal(t, 1, got.DoubleJeopardyCount())
}

func TestGameFileAdapter_GetByID_NotFound(t *testing.T) {
	repo := NewGameFileAdapter(t.TempDir(), dto.FormatJSON)

	_, err := repo.GetByID(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrKindGameNotFound)
}

func TestGameFileAdapter_List(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	yamlRepo := NewGameFileAdapter(dir, dto.FormatYAML)
	jsonRepo := NewGameFileAdapter(dir, dto.FormatJSON)

	require.NoError(t, yamlRepo.Save(ctx, newTestGame("b-game", "Science Week")))
	require.NoError(t, jsonRepo.Save(ctx, newTestGame("a-game", "Friday Night")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "assets"), 0o755))

	t.Run("all games ordered by id", func(t *testing.T) {
		games, err := yamlRepo.List(ctx, "")
		require.NoError(t, err)
		require.Len(t, games, 2)
		assert.Equal(t, "a-game", games[0].ID)
		assert.Equal(t, "b-game", games[1].ID)
	})

	t.Run("prefix on id", func(t *testing.T) {
		games, err := yamlRepo.List(ctx, "b-")
		require.NoError(t, err)
		require.Len(t, games, 1)
		assert.Equal(t, "Science Week", games[0].Title)
	})

	t.Run("prefix on title ignores case", func(t *testing.T) {
		games, err := yamlRepo.List(ctx, "FRI")
		require.NoError(t, err)
		require.Len(t, games, 1)
		assert.Equal(t, "a-game", games[0].ID)
	})

	t.Run("no match", func(t *testing.T) {
		games, err := yamlRepo.List(ctx, "zzz")
		require.NoError(t, err)
		assert.Empty(t, games)
	})
}

func TestGameFileAdapter_List_MissingDirectory(t *testing.T) {
	repo := NewGameFileAdapter(filepath.Join(t.TempDir(), "does-not-exist"), dto.FormatYAML)

	games, err := repo.List(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestGameFileAdapter_List_UsesFileNameWhenDocumentHasNoID(t *testing.T) {
	dir := t.TempDir()
	doc := "version: 1\ntitle: Hand written\ncategories: []\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "manual.yml"), []byte(doc), 0o644))

	games, err := NewGameFileAdapter(dir, dto.FormatYAML).List(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "manual", games[0].ID)
	assert.False(t, games[0].IsValid())
}

func TestGameFileAdapter_List_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o644))

	_, err := NewGameFileAdapter(dir, dto.FormatJSON).List(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrKindDecode)
}

func TestGameFileAdapter_Save_ReplacesOtherFormat(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	game := newTestGame("same-id", "First")

	require.NoError(t, NewGameFileAdapter(dir, dto.FormatJSON).Save(ctx, game))
	game.Title = "Second"
	require.NoError(t, NewGameFileAdapter(dir, dto.FormatYAML).Save(ctx, game))

	assert.NoFileExists(t, filepath.Join(dir, "same-id.json"))
	assert.FileExists(t, filepath.Join(dir, "same-id.yaml"))

	got, err := NewGameFileAdapter(dir, dto.FormatJSON).GetByID(ctx, "same-id")
	require.NoError(t, err)
	assert.Equal(t, "Second", got.Title)
}

func TestGameFileAdapter_Save_RejectsPathInID(t *testing.T) {
	err := NewGameFileAdapter(t.TempDir(), dto.FormatYAML).Save(context.Background(), newTestGame("../escape", "x"))

	assert.ErrorIs(t, err, domain.ErrKindStorage)
}

func TestGameFileAdapter_List_ManyDocuments(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	repo := NewGameFileAdapter(dir, dto.FormatYAML)
	for i := 0; i < 3*maxParallelReads; i++ {
		require.NoError(t, repo.Save(ctx, newTestGame(fmt.Sprintf("game-%02d", i), "Bulk")))
	}

	games, err := repo.List(ctx, "game-1")

	require.NoError(t, err)
	require.Len(t, games, 10)
	for i, g := range games {
		assert.Equal(t, fmt.Sprintf("game-1%d", i), g.ID)
	}
}

func TestGameFileAdapter_List_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	repo := NewGameFileAdapter(dir, dto.FormatYAML)
	require.NoError(t, repo.Save(context.Background(), newTestGame("g1", "x")))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.List(ctx, "")

	assert.ErrorIs(t, err, context.Canceled)
}

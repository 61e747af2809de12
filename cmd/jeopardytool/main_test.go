package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliResult struct {
	code   int
	stdout string
	stderr string
}

// runCLI runs the command line against a config file in a temp directory so
// no config.yaml from the working tree is picked up.
func runCLI(t *testing.T, configYAML string, args ...string) cliResult {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configYAML), 0o644))

	var stdout, stderr bytes.Buffer
	code := execute(append([]string{"--config", cfgPath, "--log-level", "error"}, args...), &stdout, &stderr)
	return cliResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func fileLibrary(dir string) string {
	return fmt.Sprintf("library:\n  driver: file\n  path: %s\n  format: yaml\n", dir)
}

func TestCreateThenShow(t *testing.T) {
	lib := t.TempDir()
	cfg := fileLibrary(lib)

	created := runCLI(t, cfg, "create", "--title", "Friday Night",
		"--category", "Rivers", "--category", "Films", "--double-jeopardy", "--seed", "4")
	require.Equal(t, 0, created.code, created.stderr)
	id := strings.TrimSpace(created.stdout)
	require.NotEmpty(t, id)
	assert.FileExists(t, filepath.Join(lib, id+".yaml"))

	shown := runCLI(t, cfg, "show", "-p", "friday")
	require.Equal(t, 0, shown.code, shown.stderr)
	assert.Contains(t, shown.stdout, id+"  Friday Night  [valid]")
	assert.Contains(t, shown.stdout, "1. Rivers")
	assert.Contains(t, shown.stdout, "3. Category 3")
	assert.Equal(t, 4, strings.Count(shown.stdout, "[double jeopardy]"))

	rerolled := runCLI(t, cfg, "show", "--prefix", id, "--double-jeopardy", "--seed", "99")
	require.Equal(t, 0, rerolled.code, rerolled.stderr)
	assert.Equal(t, 4, strings.Count(rerolled.stdout, "[double jeopardy]"))
}

func TestShowNoMatch(t *testing.T) {
	res := runCLI(t, fileLibrary(t.TempDir()), "show", "-p", "nothing")

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, `Error [GAME_NOT_FOUND]: no game found matching "nothing"`)
	assert.Empty(t, res.stdout)
}

func TestShowInvalidGameFails(t *testing.T) {
	lib := t.TempDir()
	doc := `version: 1
id: broken
title: Broken
categories:
  - name: Only
    answers:
      - kind: text
        question: q
        answer: a
        double_jeopardy: false
`
	require.NoError(t, os.WriteFile(filepath.Join(lib, "broken.yaml"), []byte(doc), 0o644))

	res := runCLI(t, fileLibrary(lib), "show")

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "broken  Broken  [invalid]")
	assert.Contains(t, res.stdout, "! categories: has 1 entries, want exactly 5")
	assert.Contains(t, res.stderr, "Error [INVALID_GAME]: 1 of 1 games are invalid")
}

func TestCreateErrors(t *testing.T) {
	cfg := fileLibrary(t.TempDir())

	tests := []struct {
		name    string
		args    []string
		errText string
	}{
		{"six categories", []string{"create", "--category", "a", "--category", "b", "--category", "c",
			"--category", "d", "--category", "e", "--category", "f"}, "exactly 5 categories"},
		{"bad kind", []string{"create", "--kind", "smell"}, `unknown answer kind "smell"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, cfg, tt.args...)
			assert.Equal(t, 1, res.code)
			assert.Contains(t, res.stderr, tt.errText)
		})
	}
}

func TestConvertToFile(t *testing.T) {
	dir := t.TempDir()
	var inputs []string
	for i, name := range []string{"A", "B", "C", "D", "E"} {
		path := filepath.Join(dir, fmt.Sprintf("cat%d.json", i))
		var answers []string
		for j := 0; j < 5; j++ {
			answers = append(answers, fmt.Sprintf(`{"Text": {"answer": "a%d", "question": "q%d", "double_jeopardy": false}}`, j, j))
		}
		body := fmt.Sprintf(`{"name": %q, "answers": [%s]}`, name, strings.Join(answers, ","))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		inputs = append(inputs, path)
	}
	out := filepath.Join(dir, "out", "game.json")

	res := runCLI(t, fileLibrary(filepath.Join(dir, "lib")), append([]string{"convert", "--title", "Old", "--out", out}, inputs...)...)

	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "written to "+out)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"title": "Old"`)
	assert.NoDirExists(t, filepath.Join(dir, "lib"))

	shown := runCLI(t, fileLibrary(filepath.Dir(out)), "show", "-p", "Old")
	require.Equal(t, 0, shown.code, shown.stderr)
	assert.Contains(t, shown.stdout, "5. E")
}

func TestConvertNeedsInput(t *testing.T) {
	res := runCLI(t, fileLibrary(t.TempDir()), "convert")

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "Error: requires at least 1 arg")
}

func TestSQLiteLibrary(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "library.db")
	cfg := fmt.Sprintf("library:\n  driver: sqlite\n  path: %s\n  format: json\n", dbPath)

	created := runCLI(t, cfg, "create", "--title", "Stored", "--kind", "audio")
	require.Equal(t, 0, created.code, created.stderr)
	id := strings.TrimSpace(created.stdout)

	shown := runCLI(t, cfg, "show", "-p", id)
	require.Equal(t, 0, shown.code, shown.stderr)
	assert.Contains(t, shown.stdout, id+"  Stored  [valid]")
	assert.Contains(t, shown.stdout, `audio "" -> ""`)

	strict := runCLI(t, cfg, "show", "--strict")
	assert.Equal(t, 1, strict.code)
	assert.Contains(t, strict.stdout, "categories[0].answers[0].question: is required")
}

package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

func useConfigFile(t *testing.T, yaml string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "breakout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	flagConfig = path
	t.Cleanup(func() { flagConfig = "" })
}

func TestLoadSettingsLayering(t *testing.T) {
	logger := log.New(io.Discard)
	useConfigFile(t, "difficulty: 0\nsound: false\n")

	fromFile := storage.Settings{Difficulty: config.DifficultyEasy, Sound: false}
	assert.Equal(t, fromFile, fileSettings(logger))
	assert.Equal(t, fromFile, loadSettings(nil, logger), "no database uses the config file")

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, fromFile, loadSettings(store, logger), "nothing stored yet")

	stored := storage.Settings{Difficulty: config.DifficultyHard, Sound: true}
	require.NoError(t, store.SaveSettings(stored))
	assert.Equal(t, stored, loadSettings(store, logger), "stored settings win over the file")
}

func TestFileSettingsUnreadable(t *testing.T) {
	useConfigFile(t, "difficulty: 9\n")
	assert.Equal(t, storage.DefaultSettings(), fileSettings(log.New(io.Discard)))
}

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

func TestSettingsDefaults(t *testing.T) {
	store := openTestStore(t)

	st, err := store.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), st)
}

func TestSettingsRoundTrip(t *testing.T) {
	store := openTestStore(t)

	tests := []Settings{
		{Difficulty: config.DifficultyHard, Sound: false},
		{Difficulty: config.DifficultyEasy, Sound: true},
	}

	for _, want := range tests {
		require.NoError(t, store.SaveSettings(want))
		got, err := store.LoadSettings()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestSettingsRejectInvalidDifficulty(t *testing.T) {
	store := openTestStore(t)

	err := store.SaveSettings(Settings{Difficulty: config.Difficulty(9)})
	assert.ErrorIs(t, err, config.ErrInvalidDifficulty)
}

func TestSettingsIgnoreCorruptValues(t *testing.T) {
	store := openTestStore(t)

	_, err := store.db.Exec(`INSERT INTO settings (key, value) VALUES ('difficulty', 'nightmare'), ('sound', 'maybe')`)
	require.NoError(t, err)

	st, err := store.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), st, "corrupt values fall back to the defaults")
}

func TestLoadSettingsOver(t *testing.T) {
	store := openTestStore(t)
	base := Settings{Difficulty: config.DifficultyHard, Sound: false}

	st, err := store.LoadSettingsOver(base)
	require.NoError(t, err)
	assert.Equal(t, base, st, "nothing stored keeps the base")

	// Only the sound setting is stored; the difficulty stays the base's.
	_, err = store.db.Exec(`INSERT INTO settings (key, value) VALUES ('sound', 'true')`)
	require.NoError(t, err)

	st, err = store.LoadSettingsOver(base)
	require.NoError(t, err)
	assert.Equal(t, Settings{Difficulty: config.DifficultyHard, Sound: true}, st)

	require.NoError(t, store.SaveSettings(Settings{Difficulty: config.DifficultyEasy, Sound: false}))
	st, err = store.LoadSettingsOver(base)
	require.NoError(t, err)
	assert.Equal(t, Settings{Difficulty: config.DifficultyEasy, Sound: false}, st)
}

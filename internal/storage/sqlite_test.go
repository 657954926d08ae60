package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func scoresOf(entries []ScoreEntry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Score
	}
	return out
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, dbPath)
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		_, err := store.SaveScore("breakout", score, 0)
		require.NoError(t, err)
	}
	_, err := store.SaveScore("breakout-hard", 500, 0)
	require.NoError(t, err)

	scores, err := store.TopScores("breakout", 10)
	require.NoError(t, err)
	assert.Equal(t, []int{200, 100, 50}, scoresOf(scores), "sorted descending")

	hardScores, err := store.TopScores("breakout-hard", 10)
	require.NoError(t, err)
	assert.Len(t, hardScores, 1)
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		_, err := store.SaveScore("test", (i+1)*100, i%2)
		require.NoError(t, err)
	}

	scores, err := store.TopScores("test", 3)
	require.NoError(t, err)
	assert.Equal(t, []int{500, 400, 300}, scoresOf(scores))
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("breakout")
	require.NoError(t, err)
	assert.Zero(t, high, "empty game")

	for _, score := range []int{100, 300, 200} {
		_, err := store.SaveScore("breakout", score, 0)
		require.NoError(t, err)
	}

	high, err = store.HighScore("breakout")
	require.NoError(t, err)
	assert.Equal(t, 300, high)
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("breakout", 100, 0)
	store.SaveScore("breakout", 200, 0)
	store.SaveScore("breakout-hard", 300, 0)

	require.NoError(t, store.ClearScores("breakout"))

	normalScores, err := store.TopScores("breakout", 10)
	require.NoError(t, err)
	assert.Empty(t, normalScores)

	hardScores, err := store.TopScores("breakout-hard", 10)
	require.NoError(t, err)
	assert.Len(t, hardScores, 1, "other variants keep their scores")
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10, 0)
	}

	scores, err := store.AllScores("test")
	require.NoError(t, err)
	assert.Len(t, scores, 20)
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, dbPath)
}

func TestStoreMigrations(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	v, err := store.SchemaVersion()
	require.NoError(t, err)
	assert.EqualValues(t, 4, v)
	store.SaveScore("breakout", 42, 1)
	store.Close()

	// Reopening must not re-run migrations or lose data.
	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	high, err := store.HighScore("breakout")
	require.NoError(t, err)
	assert.Equal(t, 42, high)
}

func TestStoreScoreRound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveScore("breakout", 330, 1)
	require.NoError(t, err)

	scores, err := store.TopScores("breakout", 1)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 1, scores[0].Round)
	assert.Equal(t, "breakout", scores[0].GameID)
	assert.False(t, scores[0].CreatedAt.IsZero(), "CreatedAt should be set")
}

func TestStoreAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("breakout", 100, 0)
	store.SaveScore("breakout", 300, 1)
	store.SaveScore("breakout-easy", 50, 0)

	stats, err := store.AllGamesStats()
	require.NoError(t, err)
	require.Len(t, stats, 2)

	st := stats["breakout"]
	require.NotNil(t, st)
	assert.Equal(t, 2, st.GamesCount)
	assert.Equal(t, 300, st.HighScore)
	assert.Equal(t, 1, st.BestRound)
	assert.Equal(t, 200.0, st.AvgScore)
}

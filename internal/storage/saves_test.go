package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/storage/migrations"
)

func TestSavedGameLifecycle(t *testing.T) {
	store := openTestStore(t)

	_, err := store.LoadGame(LocalOwner, "breakout")
	require.ErrorIs(t, err, ErrNoSavedGame)

	first := []byte{0x81, 0xa1, 'v', 0x01}
	require.NoError(t, store.SaveGame(LocalOwner, "breakout", first, 14))

	g, err := store.LoadGame(LocalOwner, "breakout")
	require.NoError(t, err)
	assert.Equal(t, first, g.Snapshot)
	assert.Equal(t, 14, g.Score)
	assert.Equal(t, "breakout", g.GameID)
	assert.Equal(t, LocalOwner, g.Owner)

	// A second save replaces the first.
	second := []byte{0x81, 0xa1, 'v', 0x02}
	require.NoError(t, store.SaveGame(LocalOwner, "breakout", second, 21))
	g, err = store.LoadGame(LocalOwner, "breakout")
	require.NoError(t, err)
	assert.Equal(t, second, g.Snapshot)
	assert.Equal(t, 21, g.Score)

	// Saves are per game.
	_, err = store.LoadGame(LocalOwner, "breakout-hard")
	assert.ErrorIs(t, err, ErrNoSavedGame)

	require.NoError(t, store.DeleteGame(LocalOwner, "breakout"))
	_, err = store.LoadGame(LocalOwner, "breakout")
	assert.ErrorIs(t, err, ErrNoSavedGame)
	assert.NoError(t, store.DeleteGame(LocalOwner, "breakout"), "deleting a missing save")
}

func TestSavedGamesArePerOwner(t *testing.T) {
	store := openTestStore(t)
	alice, bob := SSHOwner("alice"), SSHOwner("bob")

	require.NoError(t, store.SaveGame(alice, "breakout", []byte("alice"), 70))
	require.NoError(t, store.SaveGame(bob, "breakout", []byte("bob"), 10))

	g, err := store.LoadGame(alice, "breakout")
	require.NoError(t, err)
	assert.Equal(t, []byte("alice"), g.Snapshot)
	assert.Equal(t, 70, g.Score)

	_, err = store.LoadGame(LocalOwner, "breakout")
	assert.ErrorIs(t, err, ErrNoSavedGame, "the local player sees no SSH saves")

	require.NoError(t, store.DeleteGame(bob, "breakout"))
	g, err = store.LoadGame(alice, "breakout")
	require.NoError(t, err, "deleting bob's save keeps alice's")
	assert.Equal(t, []byte("alice"), g.Snapshot)
}

func TestSSHOwner(t *testing.T) {
	assert.Equal(t, "ssh:alice", SSHOwner("alice"))
	assert.NotEqual(t, LocalOwner, SSHOwner("local"))
}

func TestOwnerMigrationKeepsSaves(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	require.NoError(t, err)

	// Roll back to the single-owner schema and save a game the old way.
	gooseMu.Lock()
	goose.SetBaseFS(migrations.FS)
	err = goose.DownToContext(context.Background(), store.db, ".", 3)
	gooseMu.Unlock()
	require.NoError(t, err)

	_, err = store.db.Exec(`INSERT INTO saved_games (game_id, snapshot, score) VALUES ('breakout', x'0102', 33)`)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	g, err := store.LoadGame(LocalOwner, "breakout")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, g.Snapshot)
	assert.Equal(t, 33, g.Score)
}

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	require.True(t, ok, "Update returned %T, expected SessionModel", next)
	return sm
}

// playAndLeave starts the selected game, plays ticks frames, pauses and goes
// back to the menu, which saves the game.
func playAndLeave(t *testing.T, m SessionModel, ticks int) SessionModel {
	t.Helper()
	m = sendSession(t, m, runeKey('n'))
	require.Equal(t, viewGame, m.view)
	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeySpace})
	for i := 0; i < ticks; i++ {
		m = sendSession(t, m, TickMsg{})
	}
	m = sendSession(t, m, runeKey('p'))
	m = sendSession(t, m, TickMsg{})
	m = sendSession(t, m, runeKey('b'))
	require.Equal(t, viewMenu, m.view)
	return m
}

func menuHasSave(m SessionModel, gameID string) bool {
	for _, item := range m.menu.items {
		if item.GameID == gameID {
			return item.HasSave
		}
	}
	return false
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), storage.LocalOwner, registry.Options{})
	require.Contains(t, m.View(), "B R E A K O U T", "session should open on the menu")

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, viewGame, m.view)
	require.NotNil(t, m.game)
	assert.Equal(t, breakout.IDNormal, m.lastGame)

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = sendSession(t, m, TickMsg{})
	m = sendSession(t, m, runeKey('p'))
	m = sendSession(t, m, TickMsg{})
	m = sendSession(t, m, runeKey('b'))
	require.Equal(t, viewMenu, m.view)
	assert.Nil(t, m.game)
	assert.False(t, m.quitting, "back must not end the session")
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), storage.LocalOwner, registry.Options{})

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, viewScores, m.view)
	assert.Contains(t, m.View(), "HIGH SCORES")

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, viewMenu, m.view)
}

func TestSessionQuitFromMenu(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), storage.LocalOwner, registry.Options{})

	next, cmd := m.Update(runeKey('q'))
	assert.True(t, next.(SessionModel).quitting)
	assert.NotNil(t, cmd)
}

func TestSessionSavesArePrivate(t *testing.T) {
	store := openStore(t)
	alice := storage.SSHOwner("alice")
	bob := storage.SSHOwner("bob")

	a := NewSessionModel(store, testConfig(), alice, registry.Options{})
	a = playAndLeave(t, a, 30)
	require.True(t, menuHasSave(a, breakout.IDNormal), "alice's menu should offer her save")
	aliceSave, err := store.LoadGame(alice, breakout.IDNormal)
	require.NoError(t, err)

	// Bob connects to the same server and sees none of alice's games.
	b := NewSessionModel(store, testConfig(), bob, registry.Options{})
	assert.False(t, menuHasSave(b, breakout.IDNormal))
	assert.NotContains(t, b.View(), "[saved]")

	// Enter on bob's menu starts a fresh game rather than alice's.
	b = sendSession(t, b, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, viewGame, b.view)
	assert.Zero(t, b.game.GameState().Score)
	assert.True(t, b.game.game.State().Waiting, "bob's game should not resume alice's")

	// Bob's own save leaves alice's untouched.
	b = NewSessionModel(store, testConfig(), bob, registry.Options{})
	b = playAndLeave(t, b, 10)
	require.True(t, menuHasSave(b, breakout.IDNormal))

	got, err := store.LoadGame(alice, breakout.IDNormal)
	require.NoError(t, err)
	assert.Equal(t, aliceSave.Snapshot, got.Snapshot)

	// A new alice session still offers her game.
	a = NewSessionModel(store, testConfig(), alice, registry.Options{})
	assert.True(t, menuHasSave(a, breakout.IDNormal))
}

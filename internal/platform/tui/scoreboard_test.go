package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

func sendScores(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(ScoreboardModel)
	require.True(t, ok, "Update returned %T, expected ScoreboardModel", next)
	return sm
}

func TestScoreVariantsOrdered(t *testing.T) {
	var labels, ids []string
	for _, v := range scoreVariants() {
		labels = append(labels, v.label)
		ids = append(ids, v.id)
	}
	assert.Equal(t, []string{"EASY", "NORMAL", "HARD"}, labels)
	assert.Equal(t, []string{breakout.IDEasy, breakout.IDNormal, breakout.IDHard}, ids)
}

func TestScoreboardSideBySide(t *testing.T) {
	store := openStore(t)
	for _, score := range []int{120, 80} {
		_, err := store.SaveScore(breakout.IDNormal, score, 1)
		require.NoError(t, err)
	}
	_, err := store.SaveScore(breakout.IDEasy, 35, 0)
	require.NoError(t, err)

	m := NewScoreboardModel(store, 100, 40)
	require.Equal(t, breakout.IDNormal, m.Selected())
	assert.Len(t, m.table.Rows(), 2)

	view := m.View()
	for _, want := range []string{"HIGH SCORES", "EASY", "NORMAL", "HARD", "best   120", "best   35", "no games yet"} {
		assert.Contains(t, view, want)
	}
}

func TestScoreboardSwitchesVariant(t *testing.T) {
	store := openStore(t)
	_, err := store.SaveScore(breakout.IDEasy, 35, 0)
	require.NoError(t, err)

	m := NewScoreboardModel(store, 100, 40)

	m = sendScores(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, breakout.IDHard, m.Selected())
	assert.Empty(t, m.table.Rows())
	assert.Contains(t, m.View(), "No scores at this difficulty yet.")

	// Wraps around to the easiest variant.
	m = sendScores(t, m, runeKey('l'))
	assert.Equal(t, breakout.IDEasy, m.Selected())
	require.Len(t, m.table.Rows(), 1)
	assert.Equal(t, "35", m.table.Rows()[0][1])

	m = sendScores(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, breakout.IDHard, m.Selected())
}

func TestScoreboardNarrowShowsSelectedCard(t *testing.T) {
	m := NewScoreboardModel(nil, 40, 30)

	view := m.View()
	assert.Contains(t, view, "NORMAL")
	assert.NotContains(t, view, "EASY")
	assert.NotContains(t, view, "HARD")
	assert.Contains(t, view, "No scores at this difficulty yet.")

	m = sendScores(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	assert.Contains(t, m.View(), "EASY", "a wide terminal shows every card")
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 40)

	back := sendScores(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, back.IsGoingBack())
	assert.False(t, back.IsQuitting())
	assert.Empty(t, back.View())

	quit := sendScores(t, m, runeKey('q'))
	assert.True(t, quit.IsQuitting())
	assert.False(t, quit.IsGoingBack())
}

func TestRoundLabel(t *testing.T) {
	assert.Equal(t, "1", roundLabel(0))
	assert.Equal(t, "2", roundLabel(1))
	assert.Equal(t, "won", roundLabel(2))
}

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// holdWindow is how long a direction stays pressed after its last key event.
// Terminals only report key repeats, never releases.
const holdWindow = 150 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case " ":
		return core.ActionLaunch, false
	case "enter":
		return core.ActionConfirm, false
	case "p", "esc":
		return core.ActionPause, false
	case "r", "n":
		return core.ActionRestart, false
	case "b":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// heldKeys emulates key-up events for the paddle directions.
type heldKeys struct {
	left, right time.Time
}

// press records a direction key. Pressing one direction releases the other.
func (h *heldKeys) press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		h.left, h.right = now, time.Time{}
	case core.ActionRight:
		h.right, h.left = now, time.Time{}
	}
}

func (h *heldKeys) release() {
	*h = heldKeys{}
}

// apply sets the directions still inside the hold window on frame.
func (h heldKeys) apply(frame *core.InputFrame, now time.Time) {
	if !h.left.IsZero() && now.Sub(h.left) <= holdWindow {
		frame.Set(core.ActionLeft)
	}
	if !h.right.IsZero() && now.Sub(h.right) <= holdWindow {
		frame.Set(core.ActionRight)
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionNew
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "n":
		return MenuActionNew
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// Resumable is implemented by games that can be saved when the player quits
// mid-game and restored later.
type Resumable interface {
	MarshalState() ([]byte, error)
	RestoreState(data []byte) error
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	owner      string
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	held       heldKeys
	now        func() time.Time
	resume     []byte
	gameState  core.GameState
	embedded   bool // Inside a SessionModel: back returns to the menu instead of quitting
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger sets the logger. Logs are discarded by default.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithOwner sets whose saved games the model writes. Defaults to the local player.
func WithOwner(owner string) ModelOption {
	return func(m *Model) { m.owner = owner }
}

// WithResume restores the given saved state right after the game is reset.
func WithResume(data []byte) ModelOption {
	return func(m *Model) { m.resume = data }
}

func withClock(now func() time.Time) ModelOption {
	return func(m *Model) { m.now = now }
}

func embedded() ModelOption {
	return func(m *Model) { m.embedded = true }
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		owner:      storage.LocalOwner,
		logger:     log.New(io.Discard),
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init resets the game, applies a pending resume and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	if len(m.resume) > 0 {
		r, ok := m.game.(Resumable)
		switch {
		case !ok:
			m.logger.Warn("game cannot be resumed", "game", m.game.ID())
		default:
			if err := r.RestoreState(m.resume); err != nil {
				m.logger.Warn("saved game discarded", "game", m.game.ID(), "err", err)
			} else {
				m.logger.Info("resumed saved game", "game", m.game.ID())
			}
		}
	}

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Render scales the field to the new size.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, quit := m.keys.MapKey(msg)
	if quit {
		m.persist()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionLeft, core.ActionRight:
		m.held.press(action, m.now())
	case core.ActionBack:
		if !m.gameState.Paused && !m.gameState.GameOver {
			return m, nil
		}
		m.persist()
		m.backToMenu = true
		if !m.embedded {
			return m, tea.Quit
		}
	case core.ActionPause:
		m.held.release()
		m.inputFrame.Set(action)
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	m.held.apply(&m.inputFrame, m.now())

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if wasOver && !m.gameState.GameOver {
		// Restarted from the end screen.
		m.scoreSaved = false
	}
	if m.gameState.GameOver && !m.scoreSaved {
		m.recordResult()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordResult saves the final score and drops any saved game for this variant.
func (m Model) recordResult() {
	if m.store == nil {
		return
	}
	id := m.game.ID()
	if m.gameState.Score > 0 {
		if _, err := m.store.SaveScore(id, m.gameState.Score, m.gameState.Round); err != nil {
			m.logger.Warn("could not save score", "game", id, "err", err)
		} else {
			m.logger.Info("score saved", "game", id, "score", m.gameState.Score, "round", m.gameState.Round)
		}
	}
	if err := m.store.DeleteGame(m.owner, id); err != nil {
		m.logger.Warn("could not clear saved game", "game", id, "err", err)
	}
}

// persist saves an unfinished game so it can be resumed. A game that has not
// been started leaves any earlier save untouched.
func (m Model) persist() {
	if m.store == nil || m.gameState.GameOver {
		return
	}
	st := m.game.State()
	if st.GameOver || (st.Waiting && st.Score == 0) {
		return
	}
	r, ok := m.game.(Resumable)
	if !ok {
		return
	}

	id := m.game.ID()
	data, err := r.MarshalState()
	if err != nil {
		m.logger.Warn("could not encode game", "game", id, "err", err)
		return
	}
	if err := m.store.SaveGame(m.owner, id, data, st.Score); err != nil {
		m.logger.Warn("could not save game", "game", id, "err", err)
		return
	}
	m.logger.Info("game saved", "game", id, "score", st.Score)
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// GameState returns the state seen on the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

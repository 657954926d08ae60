package breakout

import (
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// State is the World's game state.
type State int

const (
	StateReady State = iota
	StatePaused
	StateResumed
	StateEnding
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePaused:
		return "paused"
	case StateResumed:
		return "resumed"
	case StateEnding:
		return "ending"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// canTransition is the complete transition table. Anything not listed is ignored.
func (s State) canTransition(to State) bool {
	switch s {
	case StateReady:
		return to == StateResumed
	case StateResumed:
		return to == StatePaused || to == StateEnding
	case StatePaused:
		return to == StateResumed || to == StateReady
	case StateEnding:
		return to == StateEnded
	case StateEnded:
		return to == StateReady
	default:
		return false
	}
}

// World owns every entity and the game state machine.
// It is not safe for concurrent use; input calls must be serialized with Update.
type World struct {
	cfg config.BreakoutConfig

	state        State
	stateTime    float64
	round        int
	gameOver     bool
	boardChanged bool

	border Border
	blocks Blocks
	wall   *Wall
	paddle *Paddle
	ball   *Ball

	paddleStart core.Vec2
	ballStart   core.Vec2

	sound  core.SoundPlayer
	logger *log.Logger
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithSound sets the sound event sink.
func WithSound(s core.SoundPlayer) Option {
	return func(w *World) {
		if s != nil {
			w.sound = s
		}
	}
}

// NewWorld creates a world in the READY state. cfg is assumed valid.
func NewWorld(cfg config.BreakoutConfig, opts ...Option) *World {
	s := cfg.Field.BlockSize
	w := &World{
		cfg:    cfg,
		sound:  core.NopSound{},
		logger: log.New(io.Discard),
		paddleStart: core.Vec2{
			X: (cfg.Field.Width - cfg.PaddleWidth()) / 2,
			Y: s + cfg.Paddle.Height,
		},
		ballStart: core.Vec2{
			X: s,
			Y: cfg.Field.Height - 3*s - cfg.Field.WallPadding - float64(cfg.Bricks.Rows)*cfg.Bricks.Height,
		},
	}
	for _, opt := range opts {
		opt(w)
	}

	w.border = newBorder(cfg)
	w.blocks = newBlocks(cfg)
	w.wall = NewWall(cfg)
	w.paddle = newPaddle(cfg, w.blocks, w.paddleStart.X, w.paddleStart.Y)
	w.ball = newBall(cfg, w.ballStart.X, w.ballStart.Y)
	return w
}

func (w *World) transition(to State) bool {
	if !w.state.canTransition(to) {
		return false
	}
	w.logger.Debug("state", "from", w.state, "to", to, "round", w.round, "points", w.paddle.Points)
	w.state = to
	return true
}

// Update advances the simulation by delta seconds. Only READY and RESUMED
// react to time.
func (w *World) Update(delta float64) {
	switch w.state {
	case StateResumed:
		w.apply(w.ball.Update(delta, w.arena()))
	case StateReady:
		w.wait(delta)
	}
}

// wait resumes play once the ready delay has accumulated.
func (w *World) wait(delta float64) {
	if w.stateTime >= w.cfg.Gameplay.ReadySeconds {
		w.stateTime = 0
		w.Resume()
		return
	}
	w.stateTime += delta
}

func (w *World) arena() Arena {
	return Arena{Border: &w.border, Blocks: &w.blocks, Wall: w.wall, Paddle: w.paddle}
}

// apply drains the ball's events. Brick removals run from the highest slot
// down so earlier slots stay valid, and nothing is applied once play stops.
func (w *World) apply(events []Event) {
	var hits []BrickHit
	lost := false

	for _, ev := range events {
		switch e := ev.(type) {
		case SoundRequested:
			w.playSound(e.Kind)
		case BrickHit:
			hits = append(hits, e)
		case BallLost:
			lost = true
		}
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].Slot > hits[j].Slot })
	for _, h := range hits {
		if w.state != StateResumed {
			return
		}
		w.RemoveBrick(h.Row, h.Slot)
	}
	if lost && w.state == StateResumed {
		w.NewBall()
	}
}

func (w *World) playSound(s Sound) {
	switch s {
	case SoundPaddle:
		w.sound.PlayPaddleSound()
	case SoundTopBorder:
		w.sound.PlayTopBorderSound()
	case SoundSideBorder:
		w.sound.PlaySideBorderSound()
	}
}

// RemoveBrick destroys the brick at slot, scores it and advances the round
// when the wall is empty. row selects the tone. Out-of-range slots are ignored.
func (w *World) RemoveBrick(row, slot int) {
	brick, ok := w.wall.At(slot)
	if !ok {
		return
	}
	w.sound.PlayBrickSound(row)

	if !w.ball.SpeedBrickHit && brick.Speed {
		w.ball.Speed(w.cfg.Bricks.SpeedRatio)
		w.ball.SpeedBrickHit = true
	}

	w.paddle.Points += brick.Points
	w.wall.Remove(slot)

	if w.wall.Empty() {
		w.round++
		if w.round < w.cfg.Gameplay.MaxRounds {
			w.logger.Debug("wall cleared", "round", w.round, "points", w.paddle.Points)
			w.wall.rebuild(w.cfg)
		} else {
			w.transition(StateEnding)
		}
	}
	w.boardChanged = true
}

// NewBall handles a lost ball: respawn while lives remain, otherwise end the game.
func (w *World) NewBall() {
	w.sound.PlayBallOutSound()

	if lives := w.ball.Lives; lives > 0 {
		w.ball.Reset(w.ballStart.X, w.ballStart.Y, lives-1)
		w.logger.Debug("ball lost", "lives", lives-1)
	} else {
		w.gameOver = true
		w.transition(StateEnding)
	}
	w.boardChanged = true
}

// NewGame resets the wall, paddle and ball and returns to READY.
// It is honored from PAUSED and ENDED only.
func (w *World) NewGame() {
	if !w.transition(StateReady) {
		return
	}
	w.wall.rebuild(w.cfg)
	w.paddle.Reset(w.paddleStart.X, w.paddleStart.Y)
	w.ball.Reset(w.ballStart.X, w.ballStart.Y, w.cfg.Ball.Lives)
	w.ball.resetHits()
	w.stateTime = 0
	w.gameOver = false
	w.round = 0
	w.boardChanged = true
}

// Pause stops the simulation. Only valid while RESUMED.
func (w *World) Pause() { w.transition(StatePaused) }

// Resume starts or continues play from READY or PAUSED.
func (w *World) Resume() {
	if w.state == StateReady {
		w.stateTime = 0
	}
	w.transition(StateResumed)
}

// Touch is the generic "player pressed something" input: it skips the
// ready countdown and does nothing in other states.
func (w *World) Touch() {
	if w.state == StateReady {
		w.Resume()
	}
}

// End acknowledges ENDING once the front end has built its end screen.
func (w *World) End() { w.transition(StateEnded) }

// MovePaddle moves the paddle by amount. Ignored unless RESUMED.
func (w *World) MovePaddle(amount float64) {
	if w.state == StateResumed {
		w.paddle.Move(amount)
	}
}

// Accessors. Entities are returned by value so callers cannot mutate the world.

func (w *World) Ball() Ball { return *w.ball }
func (w *World) Paddle() Paddle { return *w.paddle }
func (w *World) Border() Border { return w.border }
func (w *World) Blocks() Blocks { return w.blocks }
func (w *World) Wall() []Brick { return w.wall.Bricks() }
func (w *World) WallLen() int { return w.wall.Len() }

func (w *World) State() State { return w.state }
func (w *World) Round() int { return w.round }
func (w *World) Points() int { return w.paddle.Points }
func (w *World) Lives() int { return w.ball.Lives }
func (w *World) IsReady() bool { return w.state == StateReady }
func (w *World) IsPaused() bool { return w.state == StatePaused }
func (w *World) IsResumed() bool { return w.state == StateResumed }
func (w *World) IsEnding() bool { return w.state == StateEnding }
func (w *World) IsEnd() bool { return w.state == StateEnded }
func (w *World) IsGameOver() bool { return w.gameOver }
func (w *World) IsBoardChanged() bool { return w.boardChanged }

// ResetBoardChanged consumes the board-changed signal.
func (w *World) ResetBoardChanged() { w.boardChanged = false }

// Config returns the configuration the world was built with.
func (w *World) Config() config.BreakoutConfig { return w.cfg }

package breakout

import (
	"errors"
	"fmt"
	"math"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// ErrSnapshotLayout is returned when a snapshot does not fit the world's configuration.
var ErrSnapshotLayout = errors.New("breakout: snapshot does not match world layout")

// snapshotVersion is bumped whenever Snapshot changes shape.
const snapshotVersion = 1

// Snapshot contains the complete simulation state for save/resume and
// determinism checks. Bricks are stored as grid indices (row*perRow + col).
type Snapshot struct {
	Version    int     `msgpack:"v"`
	Tick       uint64  `msgpack:"tick"`
	Difficulty int     `msgpack:"difficulty"`
	State      int     `msgpack:"state"`
	StateTime  float64 `msgpack:"state_time"`
	Round      int     `msgpack:"round"`
	GameOver   bool    `msgpack:"game_over"`

	PaddleX  float64 `msgpack:"paddle_x"`
	PaddleVX float64 `msgpack:"paddle_vx"`
	Points   int     `msgpack:"points"`

	Ball BallSnapshot `msgpack:"ball"`

	Bricks []int `msgpack:"bricks"`
}

// BallSnapshot is the ball part of a Snapshot.
type BallSnapshot struct {
	X             float64 `msgpack:"x"`
	Y             float64 `msgpack:"y"`
	DirX          float64 `msgpack:"dir_x"`
	DirY          float64 `msgpack:"dir_y"`
	AccX          float64 `msgpack:"acc_x"`
	AccY          float64 `msgpack:"acc_y"`
	Ratio         float64 `msgpack:"ratio"`
	Lives         int     `msgpack:"lives"`
	HitCounter    int     `msgpack:"hit_counter"`
	HitCountAngle float64 `msgpack:"hit_count_angle"`
	SpeedBrickHit bool    `msgpack:"speed_brick_hit"`
	StateTime     float64 `msgpack:"state_time"`
}

// Snapshot captures the world state. Tick is left for the caller.
func (w *World) Snapshot() Snapshot {
	b := w.ball
	return Snapshot{
		Version:    snapshotVersion,
		Difficulty: int(w.cfg.Difficulty),
		State:      int(w.state),
		StateTime:  w.stateTime,
		Round:      w.round,
		GameOver:   w.gameOver,
		PaddleX:    w.paddle.Bounds.X,
		PaddleVX:   w.paddle.Velocity.X,
		Points:     w.paddle.Points,
		Ball: BallSnapshot{
			X:             b.Bounds.X,
			Y:             b.Bounds.Y,
			DirX:          b.Direction.X,
			DirY:          b.Direction.Y,
			AccX:          b.Acceleration.X,
			AccY:          b.Acceleration.Y,
			Ratio:         b.Ratio,
			Lives:         b.Lives,
			HitCounter:    b.HitCounter,
			HitCountAngle: b.HitCountAngle,
			SpeedBrickHit: b.SpeedBrickHit,
			StateTime:     b.StateTime,
		},
		Bricks: w.wall.cells(),
	}
}

// ApplySnapshot restores a snapshot taken from a world with the same
// configuration. The world is left unchanged on error.
func (w *World) ApplySnapshot(snap Snapshot) error {
	if err := validateSnapshot(w.cfg, snap); err != nil {
		return err
	}

	w.state = State(snap.State)
	w.stateTime = snap.StateTime
	w.round = snap.Round
	w.gameOver = snap.GameOver

	w.paddle.SetPosition(snap.PaddleX, w.paddleStart.Y)
	w.paddle.Velocity.X = snap.PaddleVX
	w.paddle.Points = snap.Points

	sb := snap.Ball
	w.ball.SetPosition(sb.X, sb.Y)
	w.ball.Direction = core.Vec2{X: sb.DirX, Y: sb.DirY}
	w.ball.Acceleration = core.Vec2{X: sb.AccX, Y: sb.AccY}
	w.ball.Ratio = sb.Ratio
	w.ball.Lives = sb.Lives
	w.ball.HitCounter = sb.HitCounter
	w.ball.HitCountAngle = sb.HitCountAngle
	w.ball.SpeedBrickHit = sb.SpeedBrickHit
	w.ball.StateTime = sb.StateTime

	w.wall.keep(w.cfg, snap.Bricks)
	w.boardChanged = true
	return nil
}

func validateSnapshot(cfg config.BreakoutConfig, snap Snapshot) error {
	if snap.Version != snapshotVersion {
		return fmt.Errorf("%w: version %d", ErrSnapshotLayout, snap.Version)
	}
	if snap.Difficulty != int(cfg.Difficulty) {
		return fmt.Errorf("%w: difficulty %d, world uses %d", ErrSnapshotLayout, snap.Difficulty, int(cfg.Difficulty))
	}
	if snap.State < int(StateReady) || snap.State > int(StateEnded) {
		return fmt.Errorf("%w: state %d", ErrSnapshotLayout, snap.State)
	}
	if snap.Round < 0 || snap.Round > cfg.Gameplay.MaxRounds {
		return fmt.Errorf("%w: round %d", ErrSnapshotLayout, snap.Round)
	}
	total := cfg.Bricks.Rows * cfg.Bricks.PerRow
	prev := -1
	for _, c := range snap.Bricks {
		if c < 0 || c >= total || c <= prev {
			return fmt.Errorf("%w: brick index %d", ErrSnapshotLayout, c)
		}
		prev = c
	}
	for _, v := range []float64{snap.PaddleX, snap.Ball.X, snap.Ball.Y, snap.Ball.AccX, snap.Ball.AccY, snap.Ball.Ratio} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value", ErrSnapshotLayout)
		}
	}
	return nil
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{snap.Difficulty, snap.State, snap.Round, snap.Points, snap.Ball.Lives, snap.Ball.HitCounter} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, f := range []float64{
		snap.StateTime, snap.PaddleX, snap.PaddleVX,
		snap.Ball.X, snap.Ball.Y, snap.Ball.DirX, snap.Ball.DirY,
		snap.Ball.AccX, snap.Ball.AccY, snap.Ball.Ratio, snap.Ball.HitCountAngle, snap.Ball.StateTime,
	} {
		h = h*31 + math.Float64bits(f)
	}
	if snap.GameOver {
		h = h*31 + 1
	}
	if snap.Ball.SpeedBrickHit {
		h = h*31 + 1
	}
	for _, c := range snap.Bricks {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	return h
}

// MarshalSnapshot encodes a snapshot with msgpack.
func MarshalSnapshot(snap Snapshot) ([]byte, error) {
	data, err := msgpack.Marshal(&snap)
	if err != nil {
		return nil, fmt.Errorf("breakout: encode snapshot: %w", err)
	}
	return data, nil
}

// UnmarshalSnapshot decodes a snapshot produced by MarshalSnapshot.
func UnmarshalSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("breakout: decode snapshot: %w", err)
	}
	return snap, nil
}

package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

type recordingSound struct {
	events []string
	bricks []int
}

func (r *recordingSound) PlayPaddleSound() { r.events = append(r.events, "paddle") }
func (r *recordingSound) PlayTopBorderSound() { r.events = append(r.events, "top") }
func (r *recordingSound) PlaySideBorderSound() { r.events = append(r.events, "side") }
func (r *recordingSound) PlayBallOutSound() { r.events = append(r.events, "out") }
func (r *recordingSound) PlayButtonSound() { r.events = append(r.events, "button") }
func (r *recordingSound) PlayBrickSound(row int) {
	r.events = append(r.events, "brick")
	r.bricks = append(r.bricks, row)
}

func TestNewWorldLayout(t *testing.T) {
	w := NewWorld(config.DefaultBreakoutConfig())

	assert.True(t, w.IsReady())
	assert.Equal(t, 108, w.WallLen())
	assert.Equal(t, 5, w.Lives())
	assert.Equal(t, 0, w.Points())
	assert.False(t, w.IsBoardChanged())

	border := w.Border()
	assert.Equal(t, 0.0, border.Left.Bounds.X)
	assert.Equal(t, 18.0, border.Left.Bounds.Y)
	assert.Equal(t, 276.0, border.Top.Bounds.Y)
	assert.Equal(t, 216.0, border.Top.Bounds.W)
	assert.Equal(t, 228.0, border.Right.Bounds.X)

	blocks := w.Blocks()
	assert.Equal(t, 6.0, blocks.Left.Height())
	assert.Equal(t, 12.0, blocks.Right.Bounds.Y)

	bricks := w.Wall()
	first, last := bricks[0], bricks[len(bricks)-1]
	assert.Equal(t, 0, first.Row)
	assert.Equal(t, 12.0, first.Bounds.X)
	assert.Equal(t, 254.0, first.Bounds.Y)
	assert.True(t, first.Speed)
	assert.Equal(t, 7, first.Points)
	assert.Equal(t, 5, last.Row)
	assert.Equal(t, 216.0, last.Bounds.X)
	assert.Equal(t, 234.0, last.Bounds.Y)
	assert.False(t, last.Speed)
	assert.Equal(t, 1, last.Points)

	assert.Equal(t, 108.0, w.Paddle().Bounds.X)
	assert.Equal(t, 15.0, w.Paddle().Bounds.Y)
	assert.Equal(t, 12.0, w.Ball().Bounds.X)
	assert.Equal(t, 222.0, w.Ball().Bounds.Y)
}

func TestStateTransitions(t *testing.T) {
	w := NewWorld(config.DefaultBreakoutConfig())

	w.Pause()
	assert.True(t, w.IsReady(), "pause is ignored while ready")
	w.End()
	assert.True(t, w.IsReady(), "end is ignored while ready")
	w.NewGame()
	assert.False(t, w.IsBoardChanged(), "new game is ignored while ready")

	w.Resume()
	assert.True(t, w.IsResumed())
	w.NewGame()
	assert.True(t, w.IsResumed(), "new game is ignored while resumed")

	w.Pause()
	assert.True(t, w.IsPaused())
	w.MovePaddle(50)
	assert.Equal(t, 108.0, w.Paddle().Bounds.X, "paddle frozen while paused")

	w.Resume()
	assert.True(t, w.IsResumed())
	w.MovePaddle(10)
	assert.Equal(t, 118.0, w.Paddle().Bounds.X)

	w.Pause()
	w.NewGame()
	assert.True(t, w.IsReady(), "pause menu offers a new game")
	assert.Equal(t, 108.0, w.Paddle().Bounds.X)
	assert.True(t, w.IsBoardChanged())
}

func TestStateTransitionTable(t *testing.T) {
	legal := map[State][]State{
		StateReady:   {StateResumed},
		StateResumed: {StatePaused, StateEnding},
		StatePaused:  {StateResumed, StateReady},
		StateEnding:  {StateEnded},
		StateEnded:   {StateReady},
	}
	all := []State{StateReady, StatePaused, StateResumed, StateEnding, StateEnded}
	for _, from := range all {
		for _, to := range all {
			want := false
			for _, s := range legal[from] {
				want = want || s == to
			}
			assert.Equal(t, want, from.canTransition(to), "%s -> %s", from, to)
		}
	}
}

func TestReadyWait(t *testing.T) {
	w := NewWorld(config.DefaultBreakoutConfig())
	dt := 1.0 / 60

	for i := 0; i < 170; i++ {
		w.Update(dt)
	}
	assert.True(t, w.IsReady(), "still waiting before 3 seconds")
	assert.Equal(t, 222.0, w.Ball().Bounds.Y, "ball does not move while ready")

	for i := 0; i < 20; i++ {
		w.Update(dt)
	}
	assert.True(t, w.IsResumed())
	assert.Less(t, w.Ball().Bounds.Y, 222.0, "ball moves once resumed")
}

func TestTouchSkipsCountdown(t *testing.T) {
	w := NewWorld(config.DefaultBreakoutConfig())
	w.Update(0.5)
	w.Touch()
	assert.True(t, w.IsResumed())

	w.Touch()
	assert.True(t, w.IsResumed(), "touch does nothing outside ready")
}

func TestRemoveBrickScoring(t *testing.T) {
	sound := &recordingSound{}
	w := NewWorld(config.DefaultBreakoutConfig(), WithSound(sound))
	w.Resume()

	expected := map[int]int{0: 7, 1: 7, 2: 4, 3: 4, 4: 1, 5: 1}
	for row := 5; row >= 0; row-- {
		slot := row * 18
		brick, ok := w.wall.At(slot)
		require.True(t, ok)
		require.Equal(t, row, brick.Row)

		before, size := w.Points(), w.WallLen()
		w.RemoveBrick(row, slot)

		assert.Equal(t, before+expected[row], w.Points(), "row %d", row)
		assert.Equal(t, size-1, w.WallLen())
		assert.True(t, w.IsBoardChanged())
		w.ResetBoardChanged()
	}
	assert.Equal(t, []int{5, 4, 3, 2, 1, 0}, sound.bricks)
}

func TestRemoveBrickOutOfRange(t *testing.T) {
	w := newTestWorld(t)
	w.RemoveBrick(0, -1)
	w.RemoveBrick(0, 108)
	assert.Equal(t, 108, w.WallLen())
	assert.Equal(t, 0, w.Points())
	assert.False(t, w.IsBoardChanged())
}

func TestSpeedBrickOneShot(t *testing.T) {
	w := newTestWorld(t)
	base := w.Ball().Acceleration.X

	w.RemoveBrick(5, w.WallLen()-1)
	assert.Equal(t, base, w.Ball().Acceleration.X, "row 5 is not a speed brick")

	w.RemoveBrick(2, 40)
	assert.Equal(t, 2*base, w.Ball().Acceleration.X)
	assert.True(t, w.Ball().SpeedBrickHit)

	w.RemoveBrick(0, 0)
	w.RemoveBrick(1, 20)
	assert.Equal(t, 2*base, w.Ball().Acceleration.X, "speed doubles once per life")

	w.NewBall()
	assert.False(t, w.Ball().SpeedBrickHit)
	assert.Equal(t, base, w.Ball().Acceleration.X)

	w.RemoveBrick(0, 0)
	assert.Equal(t, 2*base, w.Ball().Acceleration.X, "a new life re-arms the speed brick")
}

func TestRoundProgression(t *testing.T) {
	w := newTestWorld(t)
	total := w.WallLen()

	for i := 0; i < total; i++ {
		w.RemoveBrick(0, 0)
		if i < total-1 {
			assert.Equal(t, total-i-1, w.WallLen())
		}
	}
	assert.Equal(t, 1, w.Round())
	assert.Equal(t, total, w.WallLen(), "second round gets a full wall")
	assert.True(t, w.IsResumed())
	points := w.Points()

	for i := 0; i < total; i++ {
		w.RemoveBrick(0, 0)
	}
	assert.Equal(t, 2, w.Round())
	assert.True(t, w.IsEnding())
	assert.False(t, w.IsGameOver(), "clearing the last round is a win")
	assert.Equal(t, 2*points, w.Points())
}

func TestLifeLoss(t *testing.T) {
	sound := &recordingSound{}
	w := NewWorld(config.DefaultBreakoutConfig(), WithSound(sound))
	w.Resume()
	w.RemoveBrick(0, 0)
	w.ResetBoardChanged()
	w.ball.HitCounter = 5
	w.ball.HitCountAngle = 5

	w.ball.SetPosition(100, -2.5)
	w.Update(1.0 / 60)

	assert.Equal(t, 4, w.Lives())
	assert.Equal(t, 12.0, w.Ball().Bounds.X)
	assert.Equal(t, 222.0, w.Ball().Bounds.Y)
	assert.Equal(t, 107, w.WallLen(), "wall untouched by a lost ball")
	assert.Equal(t, 7, w.Points(), "score untouched by a lost ball")
	assert.True(t, w.IsBoardChanged())
	assert.True(t, w.IsResumed())
	assert.Equal(t, 5, w.Ball().HitCounter, "hit counters survive a lost ball")
	assert.Equal(t, 5.0, w.Ball().HitCountAngle)
	assert.Contains(t, sound.events, "out")
}

func TestLastLifeEndsGame(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 5; i++ {
		w.NewBall()
	}
	assert.Equal(t, 0, w.Lives())
	assert.True(t, w.IsResumed())

	w.ball.SetPosition(100, -2.5)
	w.Update(1.0 / 60)
	assert.True(t, w.IsGameOver())
	assert.True(t, w.IsEnding())

	w.Update(1.0 / 60)
	assert.True(t, w.IsEnding(), "ending does not advance the simulation")

	w.End()
	assert.True(t, w.IsEnd())

	w.NewGame()
	assert.True(t, w.IsReady())
	assert.False(t, w.IsGameOver())
	assert.Equal(t, 5, w.Lives())
	assert.Equal(t, 0, w.Round())
	assert.Equal(t, 0, w.Points())
	assert.Equal(t, 108, w.WallLen())
	assert.Equal(t, 0, w.Ball().HitCounter)
}

func TestApplyEventsDescendingAndStopsWhenEnded(t *testing.T) {
	w := newTestWorld(t)
	w.apply([]Event{BrickHit{Row: 0, Slot: 3}, BrickHit{Row: 0, Slot: 5}, SoundRequested{Kind: SoundPaddle}})

	assert.Equal(t, 106, w.WallLen())
	for _, b := range w.Wall() {
		if b.Row == 0 {
			assert.NotContains(t, []int{3, 5}, b.Col)
		}
	}

	// A ball lost in the same tick as the winning brick is not applied.
	w.wall.bricks = w.wall.bricks[:1]
	w.round = 1
	lives := w.Lives()
	w.apply([]Event{BrickHit{Row: 0, Slot: 0}, BallLost{}})
	assert.True(t, w.IsEnding())
	assert.False(t, w.IsGameOver())
	assert.Equal(t, lives, w.Lives())
}

func TestSoundEventsDispatched(t *testing.T) {
	sound := &recordingSound{}
	w := NewWorld(config.DefaultBreakoutConfig(), WithSound(sound))
	w.Resume()
	w.apply([]Event{
		SoundRequested{Kind: SoundSideBorder},
		SoundRequested{Kind: SoundTopBorder},
		SoundRequested{Kind: SoundPaddle},
	})
	assert.Equal(t, []string{"side", "top", "paddle"}, sound.events)
}

package core

// RuntimeConfig contains configuration passed to games at initialization.
// The simulation has no randomness: the tick rate alone fixes its timeline.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns the runtime used when the terminal size is unknown.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// DeltaTime returns the simulated seconds per tick.
func (c RuntimeConfig) DeltaTime() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Round    int  // Number of walls cleared
	Lives    int  // Balls remaining in reserve
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Waiting  bool // Ready countdown before play resumes
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// Package config provides YAML-based game configuration loading and
// difficulty presets for breakout.
package config

// BreakoutConfig contains all tunable geometry and gameplay constants.
// All distances are world units; the world is y-up with the origin at the
// bottom-left corner of the field.
type BreakoutConfig struct {
	Field      FieldConfig    `yaml:"field"`
	Bricks     BrickConfig    `yaml:"bricks"`
	Paddle     PaddleConfig   `yaml:"paddle"`
	Ball       BallConfig     `yaml:"ball"`
	Gameplay   GameplayConfig `yaml:"gameplay"`
	Difficulty Difficulty     `yaml:"difficulty"`
	Sound      bool           `yaml:"sound"`
}

// FieldConfig defines the playfield and its border.
type FieldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	BlockSize   float64 `yaml:"block_size"`   // Border thickness
	WallPadding float64 `yaml:"wall_padding"` // Gap between top border and the first brick row
}

// BrickConfig defines the brick wall layout.
type BrickConfig struct {
	Rows       int     `yaml:"rows"`
	PerRow     int     `yaml:"per_row"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Points     []int   `yaml:"points"`      // Points per row, top row first
	SpeedRows  int     `yaml:"speed_rows"`  // Rows [0, SpeedRows) are speed bricks
	SpeedRatio float64 `yaml:"speed_ratio"` // Ball speed multiplier for the first speed brick of a life
}

// PaddleConfig defines the player paddle.
type PaddleConfig struct {
	Width    float64 `yaml:"width"` // Width at normal difficulty
	Height   float64 `yaml:"height"`
	Sections int     `yaml:"sections"`
	KeyStep  float64 `yaml:"key_step"` // Move amount per tick while a direction key is held
}

// BallConfig defines the ball and its escalation rules.
type BallConfig struct {
	Size           float64 `yaml:"size"`
	Acceleration   float64 `yaml:"acceleration"` // Base speed at normal difficulty
	Lives          int     `yaml:"lives"`
	AngleIncrement float64 `yaml:"angle_increment"` // Degrees added on hits 3, 7 and 11 of each cycle
	HitSpeedRatio  float64 `yaml:"hit_speed_ratio"` // Speed multiplier on every 12th paddle hit
}

// GameplayConfig defines round and timer rules.
type GameplayConfig struct {
	MaxRounds    int     `yaml:"max_rounds"`
	ReadySeconds float64 `yaml:"ready_seconds"`
}

// BrickPoints returns the point value of a brick in the given row.
// Rows past the configured list score like the last listed row.
func (c BreakoutConfig) BrickPoints(row int) int {
	if len(c.Bricks.Points) == 0 {
		return 1
	}
	if row < 0 {
		row = 0
	}
	if row >= len(c.Bricks.Points) {
		row = len(c.Bricks.Points) - 1
	}
	return c.Bricks.Points[row]
}

// PaddleWidth returns the paddle width scaled by the difficulty.
func (c BreakoutConfig) PaddleWidth() float64 {
	return c.Paddle.Width * c.Difficulty.PaddleWidthRatio()
}

// BallAcceleration returns the base ball speed scaled by the difficulty.
func (c BreakoutConfig) BallAcceleration() float64 {
	return c.Ball.Acceleration * c.Difficulty.BallSpeedRatio()
}

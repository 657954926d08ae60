package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the built-in breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Field: FieldConfig{
			Width:       240,
			Height:      300,
			BlockSize:   12,
			WallPadding: 18,
		},
		Bricks: BrickConfig{
			Rows:       6,
			PerRow:     18,
			Width:      12,
			Height:     4,
			Points:     []int{7, 7, 4, 4, 1, 1},
			SpeedRows:  3,
			SpeedRatio: 2,
		},
		Paddle: PaddleConfig{
			Width:    24,
			Height:   3,
			Sections: 5,
			KeyStep:  3,
		},
		Ball: BallConfig{
			Size:           3,
			Acceleration:   50,
			Lives:          5,
			AngleIncrement: 5,
			HitSpeedRatio:  1.1,
		},
		Gameplay: GameplayConfig{
			MaxRounds:    2,
			ReadySeconds: 3,
		},
		Difficulty: DifficultyNormal,
		Sound:      true,
	}
}

package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidDifficulty is returned when a difficulty value is outside 0..2.
var ErrInvalidDifficulty = errors.New("invalid difficulty")

// Difficulty is the three-valued difficulty setting.
type Difficulty int

const (
	DifficultyEasy   Difficulty = 0
	DifficultyNormal Difficulty = 1
	DifficultyHard   Difficulty = 2
)

// Difficulties lists every valid setting in ascending order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}

// String returns the preset name.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyNormal:
		return "normal"
	case DifficultyHard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// Valid reports whether d is one of the three presets.
func (d Difficulty) Valid() bool {
	return d >= DifficultyEasy && d <= DifficultyHard
}

// BallSpeedRatio scales the ball's base acceleration.
func (d Difficulty) BallSpeedRatio() float64 {
	switch d {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.25
	default:
		return 1
	}
}

// PaddleWidthRatio scales the paddle width. Easier games get a wider paddle.
func (d Difficulty) PaddleWidthRatio() float64 {
	switch d {
	case DifficultyEasy:
		return 1.25
	case DifficultyHard:
		return 0.75
	default:
		return 1
	}
}

// ParseDifficulty accepts a preset name ("easy", "normal", "hard") or its
// numeric value ("0", "1", "2").
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, d := range Difficulties {
		if s == d.String() {
			return d, nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || !Difficulty(n).Valid() {
		return DifficultyNormal, fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
	}
	return Difficulty(n), nil
}

// ApplyBreakoutPreset sets the difficulty on cfg and checks that the scaled
// paddle still fits the field. cfg is left unchanged on error.
func ApplyBreakoutPreset(cfg *BreakoutConfig, d Difficulty) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDifficulty, int(d))
	}
	scaled := *cfg
	scaled.Difficulty = d
	if err := scaled.Validate(); err != nil {
		return err
	}
	*cfg = scaled
	return nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by Validate failures.
var ErrInvalidConfig = errors.New("invalid config")

// LoadBreakout loads breakout configuration.
// Search order: customPath -> ~/.arcade/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultBreakoutConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseBreakout(data)
		if err != nil {
			return DefaultBreakoutConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("breakout.yaml"), filepath.Join("configs", "breakout.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parseBreakout(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := parseBreakout(defaultBreakoutYAML)
	if err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseBreakout decodes data over the hardcoded defaults and validates the result.
func parseBreakout(data []byte) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the geometry leaves room for the wall, ball and paddle.
func (c BreakoutConfig) Validate() error {
	if !c.Difficulty.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDifficulty, int(c.Difficulty))
	}
	switch {
	case c.Field.Width <= 2*c.Field.BlockSize || c.Field.BlockSize <= 0:
		return fmt.Errorf("%w: field width %.1f too small for block size %.1f", ErrInvalidConfig, c.Field.Width, c.Field.BlockSize)
	case c.Bricks.Rows <= 0 || c.Bricks.PerRow <= 0:
		return fmt.Errorf("%w: wall needs at least one brick", ErrInvalidConfig)
	case c.Bricks.Width <= 0 || c.Bricks.Height <= 0:
		return fmt.Errorf("%w: brick size must be positive", ErrInvalidConfig)
	case c.Paddle.Sections <= 0 || c.PaddleWidth() <= 0:
		return fmt.Errorf("%w: paddle needs a positive width and section count", ErrInvalidConfig)
	case c.PaddleWidth() > c.Field.Width-2*c.Field.BlockSize:
		return fmt.Errorf("%w: paddle wider than the field", ErrInvalidConfig)
	case c.Ball.Size <= 0 || c.Ball.Acceleration <= 0:
		return fmt.Errorf("%w: ball size and acceleration must be positive", ErrInvalidConfig)
	case c.Ball.Lives < 0:
		return fmt.Errorf("%w: negative lives", ErrInvalidConfig)
	case c.Gameplay.MaxRounds <= 0:
		return fmt.Errorf("%w: max_rounds must be positive", ErrInvalidConfig)
	}

	// The ball spawns just below the wall and must start above the paddle.
	spawnY := c.Field.Height - 3*c.Field.BlockSize - c.Field.WallPadding - float64(c.Bricks.Rows)*c.Bricks.Height
	if spawnY <= 2*c.Field.BlockSize+c.Paddle.Height {
		return fmt.Errorf("%w: field height %.1f leaves no room below the wall", ErrInvalidConfig, c.Field.Height)
	}
	if float64(c.Bricks.PerRow)*c.Bricks.Width > c.Field.Width-2*c.Field.BlockSize {
		return fmt.Errorf("%w: wall wider than the field", ErrInvalidConfig)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

const (
	keyDifficulty = "difficulty"
	keySound      = "sound"
)

// Settings are the player preferences that survive restarts.
type Settings struct {
	Difficulty config.Difficulty
	Sound      bool
}

// DefaultSettings is what a fresh database reports.
func DefaultSettings() Settings {
	return Settings{Difficulty: config.DifficultyNormal, Sound: true}
}

// LoadSettings reads the stored settings. Missing or unreadable values fall
// back to DefaultSettings.
func (s *Store) LoadSettings() (Settings, error) {
	return s.LoadSettingsOver(DefaultSettings())
}

// LoadSettingsOver reads the stored settings on top of base: values never
// saved, or saved in an unreadable form, keep base's value.
func (s *Store) LoadSettingsOver(base Settings) (Settings, error) {
	out := base

	v, ok, err := s.setting(keyDifficulty)
	if err != nil {
		return out, err
	}
	if d, perr := config.ParseDifficulty(v); ok && perr == nil {
		out.Difficulty = d
	}

	v, ok, err = s.setting(keySound)
	if err != nil {
		return out, err
	}
	if b, perr := strconv.ParseBool(v); ok && perr == nil {
		out.Sound = b
	}

	return out, nil
}

// SaveSettings stores both settings in one transaction.
func (s *Store) SaveSettings(st Settings) error {
	if !st.Difficulty.Valid() {
		return fmt.Errorf("storage: %w: %d", config.ErrInvalidDifficulty, int(st.Difficulty))
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	for k, v := range map[string]string{
		keyDifficulty: st.Difficulty.String(),
		keySound:      strconv.FormatBool(st.Sound),
	} {
		if _, err := tx.Exec(
			`INSERT INTO settings (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
			k, v,
		); err != nil {
			return fmt.Errorf("storage: cannot save setting %s: %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit settings: %w", err)
	}
	return nil
}

func (s *Store) setting(key string) (string, bool, error) {
	var v string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read setting %s: %w", key, err)
	}
	return v, true, nil
}

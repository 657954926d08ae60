package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNoSavedGame is returned by LoadGame when nothing is saved for a game.
var ErrNoSavedGame = errors.New("storage: no saved game")

// LocalOwner owns the saves made from the local terminal. SSH players get
// their own owner so they never see each other's games.
const LocalOwner = "local"

// SSHOwner returns the save owner for an SSH user.
func SSHOwner(user string) string {
	return "ssh:" + user
}

// SavedGame is an encoded snapshot kept between sessions. Each owner has at
// most one per game ID.
type SavedGame struct {
	Owner    string
	GameID   string
	Snapshot []byte
	Score    int
	SavedAt  time.Time
}

// SaveGame stores the snapshot, replacing the owner's earlier save for the game.
func (s *Store) SaveGame(owner, gameID string, snapshot []byte, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO saved_games (owner, game_id, snapshot, score) VALUES (?, ?, ?, ?)
		 ON CONFLICT(owner, game_id) DO UPDATE SET
		     snapshot = excluded.snapshot,
		     score = excluded.score,
		     saved_at = CURRENT_TIMESTAMP`,
		owner, gameID, snapshot, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game: %w", err)
	}
	return nil
}

// LoadGame returns the owner's saved game for gameID or ErrNoSavedGame.
func (s *Store) LoadGame(owner, gameID string) (SavedGame, error) {
	g := SavedGame{Owner: owner, GameID: gameID}
	var savedAt any
	err := s.db.QueryRow(
		"SELECT snapshot, score, saved_at FROM saved_games WHERE owner = ? AND game_id = ?",
		owner, gameID,
	).Scan(&g.Snapshot, &g.Score, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return SavedGame{}, ErrNoSavedGame
	}
	if err != nil {
		return SavedGame{}, fmt.Errorf("storage: cannot load game: %w", err)
	}
	g.SavedAt = parseTime(savedAt)
	return g, nil
}

// DeleteGame removes the owner's save for gameID. Deleting a missing save is
// not an error.
func (s *Store) DeleteGame(owner, gameID string) error {
	if _, err := s.db.Exec("DELETE FROM saved_games WHERE owner = ? AND game_id = ?", owner, gameID); err != nil {
		return fmt.Errorf("storage: cannot delete saved game: %w", err)
	}
	return nil
}

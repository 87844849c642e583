// Copyright (c) 2025 Maheesh.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Maheesh07/Bech-De/db"
	"github.com/Maheesh07/Bech-De/models"
)

// ErrEmptyCode rejects empty or whitespace-only submissions before any
// storage call is made.
var ErrEmptyCode = errors.New("no code detected")

// Result is the outcome of a redemption attempt. Score is the player's
// authoritative post-claim score and is only set when Status is ScanOK.
type Result struct {
	Status string
	Score  int64
}

// Redeem submits a code for credit on behalf of a player.
//
// A code is credited to at most one player: the claim is a single
// conditional UPDATE gated on the claim column still being NULL, executed
// in one transaction with the scan audit row and the score increment. A
// concurrent redeemer losing that race observes zero rows affected and is
// reported ScanUsed, never an error.
func Redeem(store *db.Store, playerID int64, submitted string) (Result, error) {
	code := strings.TrimSpace(submitted)
	if code == "" {
		return Result{}, ErrEmptyCode
	}

	row, err := store.QueryOne(`SELECT id, used_by_player_id FROM codes WHERE code = ?`, code)
	if err != nil {
		return Result{}, fmt.Errorf("look up code: %w", err)
	}
	if row == nil {
		return Result{Status: models.ScanInvalid}, nil
	}
	if row["used_by_player_id"] != nil {
		return Result{Status: models.ScanUsed}, nil
	}

	codeID, ok := row["id"].(int64)
	if !ok {
		return Result{}, fmt.Errorf("unexpected code id type %T", row["id"])
	}
	now := time.Now().UTC().Format(time.RFC3339)

	var result Result
	err = store.InTx(func(tx *db.Tx) error {
		n, err := tx.Exec(`
			UPDATE codes SET used_by_player_id = ?, used_at = ?
			WHERE id = ? AND used_by_player_id IS NULL
		`, playerID, now, codeID)
		if err != nil {
			return fmt.Errorf("claim code: %w", err)
		}
		if n == 0 {
			// Lost the race to a concurrent redeemer between the read
			// above and this write. The write is the source of truth.
			result = Result{Status: models.ScanUsed}
			return nil
		}

		if _, err := tx.Exec(`
			INSERT INTO scans (player_id, code_id, scanned_at) VALUES (?, ?, ?)
		`, playerID, codeID, now); err != nil {
			return fmt.Errorf("record scan: %w", err)
		}

		if _, err := tx.Exec(`
			UPDATE players SET score = score + 1 WHERE id = ?
		`, playerID); err != nil {
			return fmt.Errorf("increment score: %w", err)
		}

		scoreRow, err := tx.QueryOne(`SELECT score FROM players WHERE id = ?`, playerID)
		if err != nil {
			return fmt.Errorf("read back score: %w", err)
		}
		score, _ := scoreRow["score"].(int64)
		result = Result{Status: models.ScanOK, Score: score}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return result, nil
}

// Leaderboard returns all players ordered by score descending, name
// ascending for ties.
func Leaderboard(store *db.Store) ([]models.LeaderboardEntry, error) {
	rows, err := store.QueryAll(`SELECT name, score FROM players ORDER BY score DESC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}

	entries := make([]models.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		name, _ := row["name"].(string)
		score, _ := row["score"].(int64)
		entries = append(entries, models.LeaderboardEntry{Name: name, Score: score})
	}
	return entries, nil
}

// ListPlayers returns every registered player ordered by id, for the admin
// listing.
func ListPlayers(store *db.Store) ([]models.AdminPlayer, error) {
	rows, err := store.QueryAll(`SELECT id, name, score FROM players ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query players: %w", err)
	}

	players := make([]models.AdminPlayer, 0, len(rows))
	for _, row := range rows {
		id, _ := row["id"].(int64)
		name, _ := row["name"].(string)
		score, _ := row["score"].(int64)
		players = append(players, models.AdminPlayer{ID: id, Name: name, Score: score})
	}
	return players, nil
}

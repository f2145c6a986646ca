package db

import (
	"fmt"
	"time"
)

type MatchRecord struct {
	ID         string
	PlayerA    string
	PlayerB    string
	Winner     string // "A", "B" or "none"
	PointsA    int
	PointsB    int
	ForfeitA   bool
	ForfeitB   bool
	FinishedAt time.Time
}

func (d *DB) RecordMatch(m MatchRecord) error {
	_, err := d.conn.Exec(`
		INSERT INTO matches (id, player_a, player_b, winner, points_a, points_b, forfeit_a, forfeit_b, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, m.ID, m.PlayerA, m.PlayerB, m.Winner, m.PointsA, m.PointsB, m.ForfeitA, m.ForfeitB, m.FinishedAt)
	if err != nil {
		return fmt.Errorf("recording match: %w", err)
	}
	return nil
}

// PlayerMatchCount returns how many recorded matches the player appears in.
func (d *DB) PlayerMatchCount(player string) (int, error) {
	var count int
	err := d.conn.QueryRow(`
		SELECT COUNT(*) FROM matches WHERE player_a = $1 OR player_b = $1
	`, player).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting matches: %w", err)
	}
	return count, nil
}

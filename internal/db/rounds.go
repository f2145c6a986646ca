package db

import (
	"fmt"

	"battlefleet/internal/scoreboard"
)

// RecordRoundStandings stores one finished round's leaderboard, one row per
// player, rank following the round's order.
func (d *DB) RecordRoundStandings(roundNum int, stats []scoreboard.PlayerStatistics) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO round_standings (round_num, rank, player, points_for, points_against, wins, loses, rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for i, st := range stats {
		if _, err := stmt.Exec(roundNum, i+1, st.Name, st.PointsFor, st.PointsAgainst, st.Wins, st.Loses, st.Rating); err != nil {
			return fmt.Errorf("inserting standing for %s: %w", st.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing round standings: %w", err)
	}
	return nil
}

// Package tournament drives a full tournament: it registers every scheduled
// pairing on the scoreboard, runs one worker per match, and feeds outcomes
// back into the scoreboard.
package tournament

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"battlefleet/internal/board"
	"battlefleet/internal/db"
	"battlefleet/internal/game"
	"battlefleet/internal/metrics"
	"battlefleet/internal/scoreboard"
)

// Runner owns one tournament's execution. Boards, strategies and visualizers
// are built fresh per match, so workers share nothing but the scoreboard.
type Runner struct {
	Engine     *game.Engine
	Scoreboard *scoreboard.Scoreboard
	NewBoard   func() (*board.Board, error)
	NewPlayer  func(name string) game.Player
	NewVisual  func(matchID string) game.Visual
	Workers    int
	DB         *db.DB // nil when no database is configured
}

// Run registers the whole schedule, then plays every match with at most
// Workers running at once. The scoreboard is closed when all matches finish
// so the reporting consumer can drain and exit.
func (r *Runner) Run(ctx context.Context, schedule [][]Pairing) error {
	// Registration is setup-phase only; it must finish before any match runs.
	for _, round := range schedule {
		for _, p := range round {
			r.Scoreboard.RegisterMatch(p.PlayerA, p.PlayerB)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	if r.Workers > 0 {
		g.SetLimit(r.Workers)
	}
	for _, round := range schedule {
		for _, p := range round {
			p := p
			g.Go(func() error {
				return r.runMatch(ctx, p)
			})
		}
	}
	err := g.Wait()
	r.Scoreboard.Close()
	return err
}

func (r *Runner) runMatch(ctx context.Context, p Pairing) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	matchID := uuid.New().String()
	b, err := r.NewBoard()
	if err != nil {
		return err
	}

	results := r.Engine.Run(b, r.NewPlayer(p.PlayerA), r.NewPlayer(p.PlayerB), r.NewVisual(matchID))
	r.Scoreboard.UpdateWithGameResults(results, p.PlayerA, p.PlayerB)
	metrics.MatchesCompleted.Inc()

	log.Printf("[Tournament] match %s: %s vs %s, winner %s (%d:%d)\n",
		matchID, p.PlayerA, p.PlayerB, winnerName(results, p), results.PointsA, results.PointsB)

	if r.DB != nil {
		rec := db.MatchRecord{
			ID:         matchID,
			PlayerA:    p.PlayerA,
			PlayerB:    p.PlayerB,
			Winner:     results.Winner.String(),
			PointsA:    results.PointsA,
			PointsB:    results.PointsB,
			ForfeitA:   results.ForfeitA,
			ForfeitB:   results.ForfeitB,
			FinishedAt: time.Now(),
		}
		if err := r.DB.RecordMatch(rec); err != nil {
			log.Printf("[DB] RecordMatch error: %v\n", err)
		}
	}
	return nil
}

func winnerName(results *game.Results, p Pairing) string {
	switch results.Winner {
	case game.WinnerA:
		return p.PlayerA
	case game.WinnerB:
		return p.PlayerB
	}
	return "none"
}

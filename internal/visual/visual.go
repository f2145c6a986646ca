// Package visual ships the match visualizers: a console renderer, a silent
// one for large tournaments and tests, and an event publisher feeding live
// spectators.
package visual

import (
	"fmt"
	"io"

	"battlefleet/internal/board"
	"battlefleet/internal/events"
	"battlefleet/internal/game"
	"battlefleet/internal/metrics"
)

// Console prints every resolved attack and the final outcome.
type Console struct {
	Out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{Out: out}
}

func (c *Console) VisualizeAttackResults(row, col int, result game.AttackResult) {
	fmt.Fprintf(c.Out, "attack (%d,%d): %s\n", row, col, result)
}

func (c *Console) VisualizeEndGame(b *board.Board, forfeitA, forfeitB bool) {
	switch {
	case forfeitA && forfeitB:
		fmt.Fprintln(c.Out, "game over: both players forfeited")
	case b.ShipCount(board.SideA) == 0:
		fmt.Fprintln(c.Out, "game over: player B wins by elimination")
	case b.ShipCount(board.SideB) == 0:
		fmt.Fprintln(c.Out, "game over: player A wins by elimination")
	}
}

// Silent discards everything.
type Silent struct{}

func (Silent) VisualizeAttackResults(row, col int, result game.AttackResult) {}

func (Silent) VisualizeEndGame(b *board.Board, forfeitA, forfeitB bool) {}

// Event publishes a match's attacks and outcome to the event bus. Sends are
// non-blocking; a full channel drops the event rather than stalling the match.
type Event struct {
	MatchID string
	Bus     *events.Bus
}

func NewEvent(matchID string, bus *events.Bus) *Event {
	return &Event{MatchID: matchID, Bus: bus}
}

func (e *Event) VisualizeAttackResults(row, col int, result game.AttackResult) {
	select {
	case e.Bus.Attacks <- events.AttackEvent{
		MatchID: e.MatchID,
		Row:     row,
		Col:     col,
		Result:  result.String(),
	}:
	default:
	}
}

func (e *Event) VisualizeEndGame(b *board.Board, forfeitA, forfeitB bool) {
	winner := game.NoWinner
	if b.ShipCount(board.SideA) == 0 {
		winner = game.WinnerB
	} else if b.ShipCount(board.SideB) == 0 {
		winner = game.WinnerA
	}
	select {
	case e.Bus.MatchEnds <- events.MatchEndEvent{
		MatchID:  e.MatchID,
		Winner:   winner.String(),
		ForfeitA: forfeitA,
		ForfeitB: forfeitB,
	}:
	default:
	}
}

// Metrics counts resolved attacks into the Prometheus collectors.
type Metrics struct{}

func (Metrics) VisualizeAttackResults(row, col int, result game.AttackResult) {
	metrics.Attacks.WithLabelValues(result.String()).Inc()
}

func (Metrics) VisualizeEndGame(b *board.Board, forfeitA, forfeitB bool) {}

// Multi fans a match out to several visualizers.
type Multi []game.Visual

func (m Multi) VisualizeAttackResults(row, col int, result game.AttackResult) {
	for _, v := range m {
		v.VisualizeAttackResults(row, col, result)
	}
}

func (m Multi) VisualizeEndGame(b *board.Board, forfeitA, forfeitB bool) {
	for _, v := range m {
		v.VisualizeEndGame(b, forfeitA, forfeitB)
	}
}

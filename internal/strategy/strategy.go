// Package strategy ships the built-in player strategies. A strategy sees the
// full board at setup, produces 1-based attack targets, and forfeits once it
// has no untried cells left.
package strategy

import (
	"math/rand"

	"battlefleet/internal/board"
	"battlefleet/internal/game"
)

// Random attacks untried cells in a shuffled order.
type Random struct {
	rng       *rand.Rand
	remaining []board.Coordinate
}

func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (s *Random) SetBoard(grid [][]*board.GamePiece, rows, cols int) {
	s.remaining = s.remaining[:0]
	for r := 1; r <= rows; r++ {
		for c := 1; c <= cols; c++ {
			s.remaining = append(s.remaining, board.Coordinate{Row: r, Col: c})
		}
	}
	s.rng.Shuffle(len(s.remaining), func(i, j int) {
		s.remaining[i], s.remaining[j] = s.remaining[j], s.remaining[i]
	})
}

func (s *Random) Attack() board.Coordinate {
	if len(s.remaining) == 0 {
		return game.Forfeit
	}
	target := s.remaining[len(s.remaining)-1]
	s.remaining = s.remaining[:len(s.remaining)-1]
	return target
}

func (s *Random) NotifyOnAttackResult(attacker, row, col int, result game.AttackResult) {}

// Sweep scans the board row by row and forfeits when done.
type Sweep struct {
	rows, cols int
	next       int
}

func NewSweep() *Sweep {
	return &Sweep{}
}

func (s *Sweep) SetBoard(grid [][]*board.GamePiece, rows, cols int) {
	s.rows = rows
	s.cols = cols
	s.next = 0
}

func (s *Sweep) Attack() board.Coordinate {
	if s.next >= s.rows*s.cols {
		return game.Forfeit
	}
	target := board.Coordinate{
		Row: s.next/s.cols + 1,
		Col: s.next%s.cols + 1,
	}
	s.next++
	return target
}

func (s *Sweep) NotifyOnAttackResult(attacker, row, col int, result game.AttackResult) {}

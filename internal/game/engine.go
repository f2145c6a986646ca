package game

import "battlefleet/internal/board"

// Engine drives a single match between two strategies to a terminal outcome.
// One engine can be shared by many match workers; it keeps no per-match state.
type Engine struct {
	policy ScorePolicy
}

func NewEngine(policy ScorePolicy) *Engine {
	return &Engine{policy: policy}
}

// Run plays the match to completion and returns its results. Player A always
// moves first. The turn passes to the other player after a miss or a forfeit;
// a hit or a sink keeps the attacker's turn.
func (e *Engine) Run(b *board.Board, playerA, playerB Player, vis Visual) *Results {
	playerA.SetBoard(b.Matrix(), b.Size(), b.Size())
	playerB.SetBoard(b.Matrix(), b.Size(), b.Size())

	active := board.SideA
	forfeitA, forfeitB := false, false
	pointsA, pointsB := 0, 0

	for !isGameOver(b, forfeitA, forfeitB) {
		current := playerA
		if active == board.SideB {
			current = playerB
		}

		target := current.Attack()
		if IsForfeit(target) {
			// Forfeits are permanent; this side is never asked to attack again.
			if active == board.SideA {
				forfeitA = true
			} else {
				forfeitB = true
			}
			active = nextSide(active, forfeitA, forfeitB)
			continue
		}

		// Strategies speak 1-based coordinates, the board is 0-based.
		target.Row--
		target.Col--

		piece := b.ExecuteAttack(target)

		attacker := 0
		if active == board.SideB {
			attacker = 1
		}

		var result AttackResult
		switch {
		case piece == nil:
			result = Miss
			active = nextSide(active, forfeitA, forfeitB)
		case piece.Life == 0:
			result = Sink
			pts := e.policy(piece)
			if piece.Owner == board.SideA {
				pointsB += pts
			} else {
				pointsA += pts
			}
		default:
			result = Hit
		}

		playerA.NotifyOnAttackResult(attacker, target.Row, target.Col, result)
		playerB.NotifyOnAttackResult(attacker, target.Row, target.Col, result)
		vis.VisualizeAttackResults(target.Row, target.Col, result)
	}

	vis.VisualizeEndGame(b, forfeitA, forfeitB)

	return &Results{
		Winner:   winner(b, forfeitA, forfeitB),
		PointsA:  pointsA,
		PointsB:  pointsB,
		ForfeitA: forfeitA,
		ForfeitB: forfeitB,
	}
}

// isGameOver reports whether the match has reached a terminal state: both
// players forfeited, or either side is out of ships.
func isGameOver(b *board.Board, forfeitA, forfeitB bool) bool {
	if forfeitA && forfeitB {
		return true
	}
	return b.ShipCount(board.SideA) == 0 || b.ShipCount(board.SideB) == 0
}

// nextSide picks the next active player. Priority: if the current player is A
// and B has not forfeited, B plays; otherwise A plays unless A has forfeited.
func nextSide(current board.Side, forfeitA, forfeitB bool) board.Side {
	if current == board.SideA && !forfeitB {
		return board.SideB
	}
	if !forfeitA {
		return board.SideA
	}
	return board.SideB
}

func winner(b *board.Board, forfeitA, forfeitB bool) Winner {
	if forfeitA && forfeitB {
		return NoWinner
	}
	if b.ShipCount(board.SideA) == 0 {
		return WinnerB
	}
	if b.ShipCount(board.SideB) == 0 {
		return WinnerA
	}
	return NoWinner
}

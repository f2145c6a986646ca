package game

import "battlefleet/internal/board"

// AttackResult classifies one resolved attack.
type AttackResult int

const (
	Miss AttackResult = iota
	Hit
	Sink
)

func (r AttackResult) String() string {
	switch r {
	case Miss:
		return "miss"
	case Hit:
		return "hit"
	case Sink:
		return "sink"
	}
	return "unknown"
}

// ForfeitCoordinate is the reserved value a strategy returns in both fields
// when it chooses to stop attacking for the rest of the match.
const ForfeitCoordinate = -1

// Forfeit is the sentinel a strategy returns from Attack to forfeit.
var Forfeit = board.Coordinate{Row: ForfeitCoordinate, Col: ForfeitCoordinate}

func IsForfeit(c board.Coordinate) bool {
	return c.Row == ForfeitCoordinate && c.Col == ForfeitCoordinate
}

// Player is one match strategy. Attack returns 1-based coordinates or the
// forfeit sentinel. NotifyOnAttackResult is called for every resolved attack
// from either side with 0-based coordinates; attacker is 0 for player A and
// 1 for player B.
type Player interface {
	SetBoard(grid [][]*board.GamePiece, rows, cols int)
	Attack() board.Coordinate
	NotifyOnAttackResult(attacker, row, col int, result AttackResult)
}

// Visual renders a match as it progresses. VisualizeEndGame is called exactly
// once, after termination, with both forfeit flags so a win by forfeit can be
// told apart from a win by elimination.
type Visual interface {
	VisualizeAttackResults(row, col int, result AttackResult)
	VisualizeEndGame(b *board.Board, forfeitA, forfeitB bool)
}

// Winner is the terminal outcome of a match.
type Winner int

const (
	NoWinner Winner = iota
	WinnerA
	WinnerB
)

func (w Winner) String() string {
	switch w {
	case WinnerA:
		return "A"
	case WinnerB:
		return "B"
	}
	return "none"
}

// Results is the outcome of one finished match, fed to the scoreboard.
type Results struct {
	Winner   Winner
	PointsA  int
	PointsB  int
	ForfeitA bool
	ForfeitB bool
}

// ScorePolicy maps a sunk piece to the points it awards the attacker. The
// same value is charged against the defender.
type ScorePolicy func(sunk *board.GamePiece) int

// PointsPerCell awards n points per cell of the sunk piece.
func PointsPerCell(n int) ScorePolicy {
	return func(sunk *board.GamePiece) int {
		return n * sunk.Size
	}
}

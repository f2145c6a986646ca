package board

// Side identifies which player owns a piece or a fleet.
type Side int

const (
	SideA Side = iota
	SideB
)

func (s Side) String() string {
	if s == SideA {
		return "A"
	}
	return "B"
}

// Coordinate is a cell position. The board itself is 0-based; player
// strategies produce 1-based coordinates that the engine normalizes.
type Coordinate struct {
	Row int
	Col int
}

// GamePiece is a single ship. All of its cells share this one struct, so
// hitting any cell decrements the same life counter.
type GamePiece struct {
	Owner Side
	Size  int
	Life  int
}

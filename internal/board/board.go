package board

import "fmt"

// Board holds one match's grid and the two fleets placed on it. It is owned
// by a single match worker and is not safe for concurrent use; matches never
// share a board.
type Board struct {
	size  int
	grid  [][]*GamePiece
	ships map[Side]int
}

func New(size int) *Board {
	grid := make([][]*GamePiece, size)
	for i := range grid {
		grid[i] = make([]*GamePiece, size)
	}
	return &Board{
		size:  size,
		grid:  grid,
		ships: map[Side]int{SideA: 0, SideB: 0},
	}
}

func (b *Board) Size() int {
	return b.size
}

// Matrix exposes the raw grid so strategies can initialize against it.
func (b *Board) Matrix() [][]*GamePiece {
	return b.grid
}

// ShipCount reports how many of the side's pieces are still afloat.
func (b *Board) ShipCount(s Side) int {
	return b.ships[s]
}

// PlacePiece places one ship occupying the given 0-based cells. Cells must be
// in range and empty.
func (b *Board) PlacePiece(owner Side, cells []Coordinate) error {
	if len(cells) == 0 {
		return fmt.Errorf("placing piece for player %s: no cells", owner)
	}
	for _, c := range cells {
		if !b.inRange(c) {
			return fmt.Errorf("placing piece for player %s: cell (%d,%d) out of range", owner, c.Row, c.Col)
		}
		if b.grid[c.Row][c.Col] != nil {
			return fmt.Errorf("placing piece for player %s: cell (%d,%d) already occupied", owner, c.Row, c.Col)
		}
	}
	piece := &GamePiece{Owner: owner, Size: len(cells), Life: len(cells)}
	for _, c := range cells {
		b.grid[c.Row][c.Col] = piece
	}
	b.ships[owner]++
	return nil
}

// ExecuteAttack applies an attack at the given 0-based coordinate and returns
// the affected piece, or nil when the cell is empty. A cleared cell stays
// empty, so re-attacking it counts as a miss rather than an error. When the
// piece's life reaches zero its owner's ship count drops.
func (b *Board) ExecuteAttack(c Coordinate) *GamePiece {
	if !b.inRange(c) {
		return nil
	}
	piece := b.grid[c.Row][c.Col]
	if piece == nil {
		return nil
	}
	b.grid[c.Row][c.Col] = nil
	piece.Life--
	if piece.Life == 0 {
		b.ships[piece.Owner]--
	}
	return piece
}

func (b *Board) inRange(c Coordinate) bool {
	return c.Row >= 0 && c.Row < b.size && c.Col >= 0 && c.Col < b.size
}

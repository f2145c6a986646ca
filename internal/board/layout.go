package board

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

// Layout is the YAML description of a board and both fleets. Cells are
// 0-based [row, col] pairs.
type Layout struct {
	Size  int          `yaml:"size"`
	Ships []ShipLayout `yaml:"ships"`
}

type ShipLayout struct {
	Side  string   `yaml:"side"`
	Cells [][2]int `yaml:"cells"`
}

func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fleet layout: %w", err)
	}
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing fleet layout: %w", err)
	}
	if l.Size <= 0 {
		return nil, fmt.Errorf("fleet layout: size must be positive, got %d", l.Size)
	}
	return &l, nil
}

// FromLayout builds a fresh board from a parsed layout. Each call returns an
// independent board, so one layout can seed many concurrent matches.
func FromLayout(l *Layout) (*Board, error) {
	b := New(l.Size)
	for _, s := range l.Ships {
		var owner Side
		switch s.Side {
		case "A", "a":
			owner = SideA
		case "B", "b":
			owner = SideB
		default:
			return nil, fmt.Errorf("fleet layout: unknown side %q", s.Side)
		}
		cells := make([]Coordinate, len(s.Cells))
		for i, c := range s.Cells {
			cells[i] = Coordinate{Row: c[0], Col: c[1]}
		}
		if err := b.PlacePiece(owner, cells); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// RandomFleet places shipsPerSide ships of sizes 1..maxShipSize for each side
// at random. Placement retries until a free straight run is found; callers
// should keep fleets small relative to the board.
func RandomFleet(size, shipsPerSide, maxShipSize int, rng *rand.Rand) *Board {
	b := New(size)
	for _, side := range []Side{SideA, SideB} {
		for i := 0; i < shipsPerSide; i++ {
			shipSize := rng.Intn(maxShipSize) + 1
			for {
				if err := b.PlacePiece(side, randomRun(size, shipSize, rng)); err == nil {
					break
				}
			}
		}
	}
	return b
}

func randomRun(boardSize, shipSize int, rng *rand.Rand) []Coordinate {
	horizontal := rng.Intn(2) == 0
	var row, col int
	if horizontal {
		row = rng.Intn(boardSize)
		col = rng.Intn(boardSize - shipSize + 1)
	} else {
		row = rng.Intn(boardSize - shipSize + 1)
		col = rng.Intn(boardSize)
	}
	cells := make([]Coordinate, shipSize)
	for i := range cells {
		if horizontal {
			cells[i] = Coordinate{Row: row, Col: col + i}
		} else {
			cells[i] = Coordinate{Row: row + i, Col: col}
		}
	}
	return cells
}

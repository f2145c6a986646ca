package game

import (
	"testing"

	"battlefleet/internal/board"
)

// scriptPlayer plays a fixed list of 1-based moves, then forfeits.
type scriptPlayer struct {
	moves    []board.Coordinate
	next     int
	boardSet bool
	notified []notification
}

type notification struct {
	attacker int
	row, col int
	result   AttackResult
}

func (p *scriptPlayer) SetBoard(grid [][]*board.GamePiece, rows, cols int) {
	p.boardSet = true
}

func (p *scriptPlayer) Attack() board.Coordinate {
	if p.next >= len(p.moves) {
		return Forfeit
	}
	m := p.moves[p.next]
	p.next++
	return m
}

func (p *scriptPlayer) NotifyOnAttackResult(attacker, row, col int, result AttackResult) {
	p.notified = append(p.notified, notification{attacker, row, col, result})
}

type recordingVisual struct {
	attacks  []notification
	endCalls int
	forfeitA bool
	forfeitB bool
}

func (v *recordingVisual) VisualizeAttackResults(row, col int, result AttackResult) {
	v.attacks = append(v.attacks, notification{row: row, col: col, result: result})
}

func (v *recordingVisual) VisualizeEndGame(b *board.Board, forfeitA, forfeitB bool) {
	v.endCalls++
	v.forfeitA = forfeitA
	v.forfeitB = forfeitB
}

// oneCellBoard gives each side a single 1-cell ship.
func oneCellBoard(t *testing.T, aCell, bCell board.Coordinate) *board.Board {
	t.Helper()
	b := board.New(4)
	if err := b.PlacePiece(board.SideA, []board.Coordinate{aCell}); err != nil {
		t.Fatal(err)
	}
	if err := b.PlacePiece(board.SideB, []board.Coordinate{bCell}); err != nil {
		t.Fatal(err)
	}
	return b
}

func TestIsGameOver(t *testing.T) {
	b := oneCellBoard(t, board.Coordinate{Row: 0, Col: 0}, board.Coordinate{Row: 3, Col: 3})

	if isGameOver(b, false, false) {
		t.Error("game with ships and no forfeits should not be over")
	}
	if isGameOver(b, true, false) {
		t.Error("a single forfeit should not end the game")
	}
	if isGameOver(b, false, true) {
		t.Error("a single forfeit should not end the game")
	}
	if !isGameOver(b, true, true) {
		t.Error("both forfeits should end the game")
	}

	b.ExecuteAttack(board.Coordinate{Row: 3, Col: 3})
	if !isGameOver(b, false, false) {
		t.Error("a side with zero ships should end the game")
	}
}

func TestNextSide(t *testing.T) {
	tests := []struct {
		name               string
		current            board.Side
		forfeitA, forfeitB bool
		want               board.Side
	}{
		{"A to B when nobody forfeited", board.SideA, false, false, board.SideB},
		{"B to A when nobody forfeited", board.SideB, false, false, board.SideA},
		{"A keeps the turn when B forfeited", board.SideA, false, true, board.SideA},
		{"B keeps the turn when A forfeited", board.SideB, true, false, board.SideB},
		{"A to B even when A forfeited", board.SideA, true, false, board.SideB},
		{"both forfeited falls through to B", board.SideA, true, true, board.SideB},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextSide(tt.current, tt.forfeitA, tt.forfeitB); got != tt.want {
				t.Errorf("nextSide(%v, %v, %v) = %v, want %v", tt.current, tt.forfeitA, tt.forfeitB, got, tt.want)
			}
		})
	}
}

func TestEngine_SinkOnFirstTurn(t *testing.T) {
	b := oneCellBoard(t, board.Coordinate{Row: 0, Col: 0}, board.Coordinate{Row: 3, Col: 3})
	// A attacks (4,4) 1-based, i.e. B's ship at (3,3).
	playerA := &scriptPlayer{moves: []board.Coordinate{{Row: 4, Col: 4}}}
	playerB := &scriptPlayer{}
	vis := &recordingVisual{}

	res := NewEngine(PointsPerCell(2)).Run(b, playerA, playerB, vis)

	if res.Winner != WinnerA {
		t.Errorf("Winner = %v, want A", res.Winner)
	}
	if res.PointsA != 2 || res.PointsB != 0 {
		t.Errorf("points = %d/%d, want 2/0", res.PointsA, res.PointsB)
	}
	if res.ForfeitA || res.ForfeitB {
		t.Error("no forfeit flags should be set")
	}
	if vis.endCalls != 1 {
		t.Errorf("VisualizeEndGame called %d times, want 1", vis.endCalls)
	}
	if vis.forfeitA || vis.forfeitB {
		t.Error("VisualizeEndGame should see both forfeit flags false")
	}
	// B never got a turn: the sink ended the match immediately.
	if playerB.next != 0 {
		t.Errorf("player B attacked %d times, want 0", playerB.next)
	}
}

func TestEngine_NormalizesCoordinates(t *testing.T) {
	b := oneCellBoard(t, board.Coordinate{Row: 2, Col: 2}, board.Coordinate{Row: 0, Col: 0})
	// 1-based (1,1) must hit board cell (0,0), B's ship.
	playerA := &scriptPlayer{moves: []board.Coordinate{{Row: 1, Col: 1}}}
	playerB := &scriptPlayer{}
	vis := &recordingVisual{}

	NewEngine(PointsPerCell(1)).Run(b, playerA, playerB, vis)

	if len(vis.attacks) != 1 {
		t.Fatalf("visualized %d attacks, want 1", len(vis.attacks))
	}
	if vis.attacks[0].row != 0 || vis.attacks[0].col != 0 {
		t.Errorf("visualized at (%d,%d), want (0,0)", vis.attacks[0].row, vis.attacks[0].col)
	}
	if vis.attacks[0].result != Sink {
		t.Errorf("result = %v, want Sink", vis.attacks[0].result)
	}
}

func TestEngine_HitRetainsTurn(t *testing.T) {
	b := board.New(4)
	if err := b.PlacePiece(board.SideA, []board.Coordinate{{Row: 0, Col: 0}}); err != nil {
		t.Fatal(err)
	}
	if err := b.PlacePiece(board.SideB, []board.Coordinate{{Row: 2, Col: 0}, {Row: 2, Col: 1}}); err != nil {
		t.Fatal(err)
	}
	// A hits B's 2-cell ship at (3,1) 1-based, keeps the turn, then sinks it
	// at (3,2). B must never attack.
	playerA := &scriptPlayer{moves: []board.Coordinate{{Row: 3, Col: 1}, {Row: 3, Col: 2}}}
	playerB := &scriptPlayer{moves: []board.Coordinate{{Row: 1, Col: 1}}}
	vis := &recordingVisual{}

	res := NewEngine(PointsPerCell(1)).Run(b, playerA, playerB, vis)

	if res.Winner != WinnerA {
		t.Errorf("Winner = %v, want A", res.Winner)
	}
	if playerB.next != 0 {
		t.Errorf("player B attacked %d times, want 0 (hit should retain A's turn)", playerB.next)
	}
	wantResults := []AttackResult{Hit, Sink}
	if len(vis.attacks) != len(wantResults) {
		t.Fatalf("visualized %d attacks, want %d", len(vis.attacks), len(wantResults))
	}
	for i, want := range wantResults {
		if vis.attacks[i].result != want {
			t.Errorf("attack %d result = %v, want %v", i, vis.attacks[i].result, want)
		}
	}
}

func TestEngine_MissSwitchesTurn(t *testing.T) {
	b := oneCellBoard(t, board.Coordinate{Row: 0, Col: 0}, board.Coordinate{Row: 3, Col: 3})
	// A misses at (2,2); B then sinks A's ship at (1,1).
	playerA := &scriptPlayer{moves: []board.Coordinate{{Row: 2, Col: 2}}}
	playerB := &scriptPlayer{moves: []board.Coordinate{{Row: 1, Col: 1}}}
	vis := &recordingVisual{}

	res := NewEngine(PointsPerCell(3)).Run(b, playerA, playerB, vis)

	if res.Winner != WinnerB {
		t.Errorf("Winner = %v, want B", res.Winner)
	}
	if res.PointsB != 3 || res.PointsA != 0 {
		t.Errorf("points = %d/%d, want 0/3", res.PointsA, res.PointsB)
	}
	// Both players see both attacks, with attacker ids 0 then 1.
	for _, p := range []*scriptPlayer{playerA, playerB} {
		if len(p.notified) != 2 {
			t.Fatalf("player notified %d times, want 2", len(p.notified))
		}
		if p.notified[0].attacker != 0 || p.notified[1].attacker != 1 {
			t.Errorf("attacker ids = %d,%d, want 0,1", p.notified[0].attacker, p.notified[1].attacker)
		}
	}
}

func TestEngine_BothForfeit(t *testing.T) {
	b := oneCellBoard(t, board.Coordinate{Row: 0, Col: 0}, board.Coordinate{Row: 3, Col: 3})
	playerA := &scriptPlayer{} // forfeits immediately
	playerB := &scriptPlayer{} // forfeits on its first turn
	vis := &recordingVisual{}

	res := NewEngine(PointsPerCell(1)).Run(b, playerA, playerB, vis)

	if res.Winner != NoWinner {
		t.Errorf("Winner = %v, want none", res.Winner)
	}
	if !res.ForfeitA || !res.ForfeitB {
		t.Error("both forfeit flags should be set")
	}
	if vis.endCalls != 1 {
		t.Errorf("VisualizeEndGame called %d times, want 1", vis.endCalls)
	}
	if !vis.forfeitA || !vis.forfeitB {
		t.Error("VisualizeEndGame should see both forfeit flags true")
	}
	if len(vis.attacks) != 0 {
		t.Errorf("visualized %d attacks, want 0", len(vis.attacks))
	}
}

func TestEngine_WinByForfeitThenElimination(t *testing.T) {
	b := oneCellBoard(t, board.Coordinate{Row: 0, Col: 0}, board.Coordinate{Row: 3, Col: 3})
	// A forfeits on the first turn; B keeps playing until A is eliminated.
	playerA := &scriptPlayer{}
	playerB := &scriptPlayer{moves: []board.Coordinate{{Row: 2, Col: 2}, {Row: 1, Col: 1}}}
	vis := &recordingVisual{}

	res := NewEngine(PointsPerCell(1)).Run(b, playerA, playerB, vis)

	if res.Winner != WinnerB {
		t.Errorf("Winner = %v, want B", res.Winner)
	}
	if !res.ForfeitA || res.ForfeitB {
		t.Errorf("forfeit flags = %v/%v, want true/false", res.ForfeitA, res.ForfeitB)
	}
	// B missed once mid-match; with A forfeited the turn stays with B.
	if playerB.next != 2 {
		t.Errorf("player B attacked %d times, want 2", playerB.next)
	}
	if !vis.forfeitA || vis.forfeitB {
		t.Error("VisualizeEndGame should distinguish the single forfeit")
	}
}

func TestEngine_SetsBoardsBeforePlay(t *testing.T) {
	b := oneCellBoard(t, board.Coordinate{Row: 0, Col: 0}, board.Coordinate{Row: 3, Col: 3})
	playerA := &scriptPlayer{}
	playerB := &scriptPlayer{}

	NewEngine(PointsPerCell(1)).Run(b, playerA, playerB, &recordingVisual{})

	if !playerA.boardSet || !playerB.boardSet {
		t.Error("both players should receive the board before play")
	}
}

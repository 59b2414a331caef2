package minesweeper

import (
	"testing"

	"puzzlebox/internal/game"
)

func countMines(b *Board) int {
	n := 0
	for r := range b.Cells {
		for c := range b.Cells[r] {
			if b.Cells[r][c].Mined {
				n++
			}
		}
	}
	return n
}

func TestNewBoardLevels(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		for _, l := range Levels {
			b := New(l, false, game.NewRand(seed))
			if b.Size() != l.Size {
				t.Fatalf("%s: size %d", l.Label, b.Size())
			}
			if got := countMines(b); got != l.Mines {
				t.Fatalf("%s: mines = %d; want %d", l.Label, got, l.Mines)
			}
			if b.Remaining != l.Size*l.Size-l.Mines {
				t.Fatalf("%s: remaining = %d", l.Label, b.Remaining)
			}
			if b.Status != game.StatusReady {
				t.Fatalf("new board should be ready, got %s", b.Status)
			}
		}
	}
}

func TestNearCounts(t *testing.T) {
	b := New(Levels[2], false, game.NewRand(9))
	size := b.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			cell := b.Cells[r][c]
			if cell.Mined {
				if cell.Near != 0 {
					t.Fatalf("mine at %d,%d has near %d", r, c, cell.Near)
				}
				continue
			}
			want := 0
			for _, p := range game.Neighbors8(r, c, size, size) {
				if b.Cells[p.Row][p.Col].Mined {
					want++
				}
			}
			if cell.Near != want {
				t.Fatalf("near at %d,%d = %d; want %d", r, c, cell.Near, want)
			}
		}
	}
}

func TestLevelForFallsBackToMedium(t *testing.T) {
	if l := LevelFor(game.Difficulty(7)); l != Levels[1] {
		t.Fatalf("got %+v", l)
	}
}

func TestRevealCascade(t *testing.T) {
	// single mine in the far corner: one click on the opposite corner opens
	// every safe cell and wins
	b := FromMines(5, []game.Point{{Row: 4, Col: 4}})
	opened, err := b.Reveal(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if opened != 24 {
		t.Fatalf("opened = %d; want 24", opened)
	}
	if b.Remaining != 0 || b.Status != game.StatusWon {
		t.Fatalf("remaining=%d status=%s", b.Remaining, b.Status)
	}
}

func TestRevealStopsAtNumbers(t *testing.T) {
	// mine column at col 2 splits the board
	mines := []game.Point{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 3, Col: 2}, {Row: 4, Col: 2}}
	b := FromMines(5, mines)
	opened, _ := b.Reveal(0, 0)
	if opened != 10 {
		t.Fatalf("opened = %d; want 10", opened)
	}
	for r := 0; r < 5; r++ {
		if !b.Cells[r][0].Revealed || !b.Cells[r][1].Revealed {
			t.Fatalf("left side row %d not revealed", r)
		}
		if b.Cells[r][3].Revealed || b.Cells[r][4].Revealed {
			t.Fatalf("flood crossed the mine wall at row %d", r)
		}
	}
	if b.Remaining != 10 || b.Status != game.StatusPlaying {
		t.Fatalf("remaining=%d status=%s", b.Remaining, b.Status)
	}
}

func TestRevealedCellsHaveNoHiddenZeroNeighbour(t *testing.T) {
	b := New(Levels[1], false, game.NewRand(21))
	clicked := false
	for r := 0; r < b.Size() && !clicked; r++ {
		for c := 0; c < b.Size() && !clicked; c++ {
			if !b.Cells[r][c].Mined && b.Cells[r][c].Near == 0 {
				b.Reveal(r, c)
				clicked = true
			}
		}
	}
	if !clicked {
		t.Skip("no empty cell on this layout")
	}
	size := b.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			cell := b.Cells[r][c]
			if !cell.Revealed || cell.Near != 0 {
				continue
			}
			for _, p := range game.Neighbors8(r, c, size, size) {
				n := b.Cells[p.Row][p.Col]
				if !n.Mined && !n.Revealed {
					t.Fatalf("hidden safe neighbour %v of open zero %d,%d", p, r, c)
				}
			}
		}
	}
}

func TestRevealMineLoses(t *testing.T) {
	b := FromMines(4, []game.Point{{Row: 1, Col: 1}, {Row: 2, Col: 3}})
	b.Reveal(1, 1)
	if b.Status != game.StatusLost {
		t.Fatalf("status = %s", b.Status)
	}
	if !b.Cells[2][3].Revealed {
		t.Fatalf("all mines should be revealed on loss")
	}
	before := b.Clone()
	if n, _ := b.Reveal(0, 0); n != 0 || b.Cells[0][0].Revealed != before.Cells[0][0].Revealed {
		t.Fatalf("finished board must ignore reveals")
	}
}

func TestFlagsBlockReveal(t *testing.T) {
	b := FromMines(3, []game.Point{{Row: 2, Col: 2}})
	if err := b.ToggleFlag(0, 0); err != nil {
		t.Fatal(err)
	}
	if b.Flags != 1 || b.MinesLeft() != 0 {
		t.Fatalf("flags=%d left=%d", b.Flags, b.MinesLeft())
	}
	if b.Status != game.StatusPlaying {
		t.Fatalf("flagging should start the game")
	}
	if n, _ := b.Reveal(0, 0); n != 0 {
		t.Fatalf("flagged cell must not open")
	}
	b.ToggleFlag(0, 0)
	if b.Flags != 0 {
		t.Fatalf("unflag should decrement, got %d", b.Flags)
	}
	b.Reveal(0, 1)
	if err := b.ToggleFlag(0, 1); err != nil || b.Cells[0][1].Flagged {
		t.Fatalf("revealed cells cannot be flagged")
	}
}

func TestFloodSkipsFlaggedNeighbours(t *testing.T) {
	b := FromMines(4, []game.Point{{Row: 3, Col: 3}})
	b.ToggleFlag(0, 1)
	opened, _ := b.Reveal(0, 0)
	if b.Cells[0][1].Revealed {
		t.Fatalf("flagged neighbour was revealed")
	}
	if opened != 14 || b.Remaining != 1 {
		t.Fatalf("opened=%d remaining=%d", opened, b.Remaining)
	}
}

func TestPressFollowsFlagMode(t *testing.T) {
	b := FromMines(3, []game.Point{{Row: 2, Col: 2}})
	b.SetFlagMode(true)
	b.Press(0, 0)
	if !b.Cells[0][0].Flagged {
		t.Fatalf("press in flag mode should flag")
	}
	b.SetFlagMode(false)
	b.LongPress(1, 1)
	if !b.Cells[1][1].Flagged {
		t.Fatalf("long press should flag")
	}
	b.Press(0, 1)
	if !b.Cells[0][1].Revealed {
		t.Fatalf("press should reveal")
	}
}

func TestResetSameBoardKeepsMines(t *testing.T) {
	b := New(Levels[0], false, game.NewRand(4))
	mines := make(map[game.Point]bool)
	for r := range b.Cells {
		for c := range b.Cells[r] {
			if b.Cells[r][c].Mined {
				mines[game.Point{Row: r, Col: c}] = true
			}
		}
	}
	for p := range mines {
		b.Reveal(p.Row, p.Col)
		break
	}
	b.ResetSameBoard()
	if b.Status != game.StatusReady || b.Flags != 0 || b.Remaining != 56 {
		t.Fatalf("status=%s flags=%d remaining=%d", b.Status, b.Flags, b.Remaining)
	}
	for r := range b.Cells {
		for c := range b.Cells[r] {
			cell := b.Cells[r][c]
			if cell.Revealed || cell.Flagged {
				t.Fatalf("cell %d,%d not hidden", r, c)
			}
			if cell.Mined != mines[game.Point{Row: r, Col: c}] {
				t.Fatalf("mine layout changed at %d,%d", r, c)
			}
		}
	}
}

func TestRevealOutOfRange(t *testing.T) {
	b := FromMines(3, nil)
	if _, err := b.Reveal(5, 0); err != game.ErrOutOfRange {
		t.Fatalf("err = %v", err)
	}
}

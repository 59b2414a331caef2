package minesweeper

import (
	"math/rand"

	"github.com/gammazero/deque"

	"puzzlebox/internal/game"
)

// Level is one of the three preset board sizes.
type Level struct {
	Label string `json:"label"`
	Size  int    `json:"size"`
	Mines int    `json:"mines"`
}

var Levels = [3]Level{
	{Label: "easy", Size: 8, Mines: 8},
	{Label: "medium", Size: 10, Mines: 15},
	{Label: "hard", Size: 12, Mines: 25},
}

func LevelFor(d game.Difficulty) Level {
	return Levels[game.DifficultyFromIndex(int(d), game.Medium)]
}

type Cell struct {
	Mined    bool `json:"mined"`
	Revealed bool `json:"revealed"`
	Flagged  bool `json:"flagged"`
	Near     int  `json:"near"`
}

// Board is a square minefield plus the counters the UI shows.
type Board struct {
	Level     Level       `json:"level"`
	Cells     [][]Cell    `json:"cells"`
	Remaining int         `json:"remaining"` // safe cells still hidden
	Flags     int         `json:"flags"`
	FlagMode  bool        `json:"flag_mode"`
	Status    game.Status `json:"status"`
}

// NewBoard places mines by rejection sampling and fills in neighbour counts.
// mines is clamped to size*size.
func NewBoard(size, mines int, rng *rand.Rand) *Board {
	if mines > size*size {
		mines = size * size
	}
	cells := newCells(size)
	for placed := 0; placed < mines; {
		r, c := rng.Intn(size), rng.Intn(size)
		if cells[r][c].Mined {
			continue
		}
		cells[r][c].Mined = true
		placed++
	}
	countNear(cells)
	return &Board{
		Level:     Level{Size: size, Mines: mines},
		Cells:     cells,
		Remaining: size*size - mines,
		Status:    game.StatusReady,
	}
}

// New builds a board for a preset level.
func New(l Level, flagMode bool, rng *rand.Rand) *Board {
	b := NewBoard(l.Size, l.Mines, rng)
	b.Level = l
	b.FlagMode = flagMode
	return b
}

// FromMines builds a board with mines at the given points; used by tests and
// the CLI to replay fixed layouts.
func FromMines(size int, mines []game.Point) *Board {
	cells := newCells(size)
	n := 0
	for _, p := range mines {
		if !game.InBounds(p.Row, p.Col, size, size) || cells[p.Row][p.Col].Mined {
			continue
		}
		cells[p.Row][p.Col].Mined = true
		n++
	}
	countNear(cells)
	return &Board{
		Level:     Level{Size: size, Mines: n},
		Cells:     cells,
		Remaining: size*size - n,
		Status:    game.StatusReady,
	}
}

func newCells(size int) [][]Cell {
	cells := make([][]Cell, size)
	for r := range cells {
		cells[r] = make([]Cell, size)
	}
	return cells
}

func countNear(cells [][]Cell) {
	size := len(cells)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if cells[r][c].Mined {
				cells[r][c].Near = 0
				continue
			}
			n := 0
			for _, p := range game.Neighbors8(r, c, size, size) {
				if cells[p.Row][p.Col].Mined {
					n++
				}
			}
			cells[r][c].Near = n
		}
	}
}

func (b *Board) Size() int { return len(b.Cells) }

func (b *Board) Clone() *Board {
	cp := *b
	cp.Cells = make([][]Cell, len(b.Cells))
	for r := range b.Cells {
		cp.Cells[r] = append([]Cell(nil), b.Cells[r]...)
	}
	return &cp
}

func (b *Board) start() {
	if b.Status == game.StatusReady {
		b.Status = game.StatusPlaying
	}
}

func (b *Board) cell(r, c int) (*Cell, error) {
	if !game.InBounds(r, c, b.Size(), b.Size()) {
		return nil, game.ErrOutOfRange
	}
	return &b.Cells[r][c], nil
}

// Reveal opens (r, c). Revealed or flagged cells and finished boards are
// ignored and report zero opened cells. Hitting a mine exposes every mine and
// loses; otherwise an empty cell floods outward.
func (b *Board) Reveal(r, c int) (int, error) {
	if b.Status.Terminal() {
		return 0, nil
	}
	cell, err := b.cell(r, c)
	if err != nil {
		return 0, err
	}
	b.start()
	if cell.Revealed || cell.Flagged {
		return 0, nil
	}
	if cell.Mined {
		for r := range b.Cells {
			for c := range b.Cells[r] {
				if b.Cells[r][c].Mined {
					b.Cells[r][c].Revealed = true
				}
			}
		}
		b.Status = game.StatusLost
		return 0, nil
	}

	opened := b.flood(r, c)
	b.Remaining -= opened
	if b.Remaining <= 0 {
		b.Status = game.StatusWon
	}
	return opened, nil
}

func (b *Board) flood(r, c int) int {
	size := b.Size()
	var stack deque.Deque[game.Point]
	stack.PushBack(game.Point{Row: r, Col: c})
	opened := 0
	for stack.Len() > 0 {
		p := stack.PopBack()
		cur := &b.Cells[p.Row][p.Col]
		if cur.Revealed || cur.Flagged {
			continue
		}
		cur.Revealed = true
		opened++
		if cur.Near != 0 {
			continue
		}
		for _, n := range game.Neighbors8(p.Row, p.Col, size, size) {
			nc := b.Cells[n.Row][n.Col]
			if !nc.Revealed && !nc.Mined {
				stack.PushBack(n)
			}
		}
	}
	return opened
}

// ToggleFlag flips the flag on a hidden cell.
func (b *Board) ToggleFlag(r, c int) error {
	if b.Status.Terminal() {
		return nil
	}
	cell, err := b.cell(r, c)
	if err != nil {
		return err
	}
	b.start()
	if cell.Revealed {
		return nil
	}
	cell.Flagged = !cell.Flagged
	if cell.Flagged {
		b.Flags++
	} else {
		b.Flags--
	}
	return nil
}

// Press is a short tap: flag in flag mode, reveal otherwise.
func (b *Board) Press(r, c int) error {
	if b.FlagMode {
		return b.ToggleFlag(r, c)
	}
	_, err := b.Reveal(r, c)
	return err
}

// LongPress always toggles the flag.
func (b *Board) LongPress(r, c int) error {
	return b.ToggleFlag(r, c)
}

func (b *Board) SetFlagMode(on bool) { b.FlagMode = on }

// ResetSameBoard hides everything again but keeps the mine layout.
func (b *Board) ResetSameBoard() {
	safe := 0
	for r := range b.Cells {
		for c := range b.Cells[r] {
			b.Cells[r][c].Revealed = false
			b.Cells[r][c].Flagged = false
			if !b.Cells[r][c].Mined {
				safe++
			}
		}
	}
	b.Remaining = safe
	b.Flags = 0
	b.Status = game.StatusReady
}

// MinesLeft is the counter shown next to the timer.
func (b *Board) MinesLeft() int {
	return b.Level.Mines - b.Flags
}

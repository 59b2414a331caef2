package sudoku

import (
	"fmt"
	"math/rand"

	"puzzlebox/internal/game"
)

// RemoveCount maps a difficulty to the number of cleared cells.
func RemoveCount(d game.Difficulty) int {
	switch d {
	case game.Easy:
		return 30
	case game.Hard:
		return 50
	default:
		return 40
	}
}

type Game struct {
	Solution   Grid            `json:"-"`
	Puzzle     Grid            `json:"puzzle"`
	Difficulty game.Difficulty `json:"difficulty"`
	Status     game.Status     `json:"status"`
	Mistakes   int             `json:"mistakes"`
	Hints      int             `json:"hints"`
	Revealed   bool            `json:"revealed"` // FillSolution was used
	Strict     bool            `json:"-"`        // Check also requires correctness
}

// CheckResult describes a successful completeness check.
type CheckResult struct {
	Wrong int `json:"wrong"` // filled cells differing from the solution
}

func New(d game.Difficulty, rng *rand.Rand) (*Game, error) {
	sol, err := GenerateFullBoard(rng)
	if err != nil {
		return nil, err
	}
	return &Game{
		Solution:   sol,
		Puzzle:     MakePuzzle(sol, RemoveCount(d), rng),
		Difficulty: d,
		Status:     game.StatusPlaying,
	}, nil
}

func (g *Game) Clone() *Game {
	cp := *g
	return &cp
}

// Editable reports whether the player may change (r, c): empty cells and
// cells holding a wrong value are editable, correct values are locked.
func (g *Game) Editable(r, c int) bool {
	v := g.Puzzle[r][c]
	return v == 0 || v != g.Solution[r][c]
}

// Enter writes v (0 clears) into (r, c).
func (g *Game) Enter(r, c, v int) error {
	if g.Status.Terminal() {
		return game.ErrFinished
	}
	if !game.InBounds(r, c, Size, Size) {
		return game.ErrOutOfRange
	}
	if v < 0 || v > Size {
		return game.Invalid(fmt.Sprintf("value %d out of range", v))
	}
	if !g.Editable(r, c) {
		return game.ErrLocked
	}
	g.Puzzle[r][c] = v
	if v != 0 && v != g.Solution[r][c] {
		g.Mistakes++
	}
	return nil
}

// Hint fills the first empty cell in row-major order with its solution value.
func (g *Game) Hint() (game.Point, bool) {
	if g.Status.Terminal() {
		return game.Point{}, false
	}
	r, c, ok := findEmpty(&g.Puzzle)
	if !ok {
		return game.Point{}, false
	}
	g.Puzzle[r][c] = g.Solution[r][c]
	g.Hints++
	return game.Point{Row: r, Col: c}, true
}

// FillSolution replaces the puzzle with the solution.
func (g *Game) FillSolution() {
	if g.Status.Terminal() {
		return
	}
	g.Puzzle = g.Solution
	g.Revealed = true
}

func (g *Game) EmptyCells() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g.Puzzle[r][c] == 0 {
				n++
			}
		}
	}
	return n
}

func (g *Game) wrongCells() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g.Puzzle[r][c] != g.Solution[r][c] {
				n++
			}
		}
	}
	return n
}

// Check declares the puzzle won once no cell is empty. Correctness is not
// required unless Strict is set; the number of wrong cells is reported either way.
func (g *Game) Check() (CheckResult, error) {
	if g.Status.Terminal() {
		return CheckResult{}, game.ErrFinished
	}
	if n := g.EmptyCells(); n > 0 {
		return CheckResult{}, &game.IncompleteError{
			Missing: n,
			Msg:     fmt.Sprintf("%d empty cells left, fill every cell first", n),
		}
	}
	res := CheckResult{Wrong: g.wrongCells()}
	if g.Strict && res.Wrong > 0 {
		return res, game.Invalid(fmt.Sprintf("%d cells are wrong", res.Wrong))
	}
	g.Status = game.StatusWon
	return res, nil
}

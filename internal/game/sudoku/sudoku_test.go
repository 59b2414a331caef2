package sudoku

import (
	"errors"
	"testing"

	"puzzlebox/internal/game"
)

// A classic, solvable Sudoku (0 = empty).
var sample = Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func TestGenerateFullBoardIsValid(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		b, err := GenerateFullBoard(game.NewRand(seed))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if !Complete(b) {
			t.Fatalf("seed %d: board is not a valid solution:\n%v", seed, b)
		}
	}
}

func TestMakePuzzleRemovesExactly(t *testing.T) {
	rng := game.NewRand(7)
	sol, err := GenerateFullBoard(rng)
	if err != nil {
		t.Fatal(err)
	}
	for _, remove := range []int{0, 1, 30, 40, 50, 81} {
		p := MakePuzzle(sol, remove, rng)
		zeros, same := 0, 0
		for r := 0; r < Size; r++ {
			for c := 0; c < Size; c++ {
				switch p[r][c] {
				case 0:
					zeros++
				case sol[r][c]:
					same++
				}
			}
		}
		if zeros != remove || same != 81-remove {
			t.Fatalf("remove=%d: zeros=%d same=%d", remove, zeros, same)
		}
	}
}

func TestIsSafe(t *testing.T) {
	b := sample
	cases := []struct {
		r, c, num int
		want      bool
	}{
		{0, 2, 5, false}, // row
		{0, 2, 8, false}, // column (row 2 has 8 at col 2)
		{0, 2, 9, false}, // box
		{0, 2, 1, true},
		{0, 2, 4, true},
		{4, 4, 5, true},
		{4, 4, 8, false},
	}
	for _, tc := range cases {
		if got := IsSafe(&b, tc.r, tc.c, tc.num); got != tc.want {
			t.Fatalf("IsSafe(%d,%d,%d) = %v; want %v", tc.r, tc.c, tc.num, got, tc.want)
		}
	}
}

func TestIsSafeMatchesDuplicateScan(t *testing.T) {
	b := sample
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] != 0 {
				continue
			}
			for num := 1; num <= 9; num++ {
				b[r][c] = num
				dup := len(Conflicts(b)) > 0
				b[r][c] = 0
				if IsSafe(&b, r, c, num) == dup {
					t.Fatalf("IsSafe(%d,%d,%d) disagrees with conflict scan", r, c, num)
				}
			}
		}
	}
}

func TestSolveSample(t *testing.T) {
	b := sample
	if !Solve(&b) {
		t.Fatalf("sample should be solvable")
	}
	if !Complete(b) {
		t.Fatalf("solution is invalid")
	}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if sample[r][c] != 0 && sample[r][c] != b[r][c] {
				t.Fatalf("solver changed a given at %d,%d", r, c)
			}
		}
	}
}

func TestSolveUnsolvable(t *testing.T) {
	// (0,8) can only take 9, which column 8 already holds.
	var b Grid
	for c := 0; c < 8; c++ {
		b[0][c] = c + 1
	}
	b[1][8] = 9
	before := b
	if Solve(&b) {
		t.Fatalf("expected unsolvable grid")
	}
	if b != before {
		t.Fatalf("failed solve must leave the grid unchanged")
	}
}

func TestHintSolvesEasyInExactlyRemoveCountCalls(t *testing.T) {
	g, err := New(game.Easy, game.NewRand(42))
	if err != nil {
		t.Fatal(err)
	}
	calls := 0
	for {
		if _, ok := g.Hint(); !ok {
			break
		}
		calls++
		if calls > 81 {
			t.Fatalf("hint loop did not terminate")
		}
	}
	if calls != 30 {
		t.Fatalf("hints = %d; want 30", calls)
	}
	if g.Puzzle != g.Solution {
		t.Fatalf("puzzle should equal solution after hints")
	}
}

func TestEnterLocksCorrectValues(t *testing.T) {
	g, err := New(game.Medium, game.NewRand(3))
	if err != nil {
		t.Fatal(err)
	}
	var given, empty game.Point
	foundGiven, foundEmpty := false, false
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g.Puzzle[r][c] != 0 && !foundGiven {
				given, foundGiven = game.Point{Row: r, Col: c}, true
			}
			if g.Puzzle[r][c] == 0 && !foundEmpty {
				empty, foundEmpty = game.Point{Row: r, Col: c}, true
			}
		}
	}

	if err := g.Enter(given.Row, given.Col, 1); !errors.Is(err, game.ErrInvalidMove) {
		t.Fatalf("given cell should be locked, got %v", err)
	}

	correct := g.Solution[empty.Row][empty.Col]
	wrong := correct%9 + 1
	if err := g.Enter(empty.Row, empty.Col, wrong); err != nil {
		t.Fatalf("enter wrong value: %v", err)
	}
	if g.Mistakes != 1 {
		t.Fatalf("mistakes = %d; want 1", g.Mistakes)
	}
	// wrong values stay editable
	if err := g.Enter(empty.Row, empty.Col, correct); err != nil {
		t.Fatalf("enter correct value: %v", err)
	}
	if err := g.Enter(empty.Row, empty.Col, 0); !errors.Is(err, game.ErrLocked) {
		t.Fatalf("correct value should lock the cell, got %v", err)
	}
	if err := g.Enter(empty.Row, empty.Col, 10); err == nil {
		t.Fatalf("expected out of range value to be rejected")
	}
}

func TestCheckRequiresCompleteness(t *testing.T) {
	g, err := New(game.Easy, game.NewRand(11))
	if err != nil {
		t.Fatal(err)
	}
	_, err = g.Check()
	var inc *game.IncompleteError
	if !errors.As(err, &inc) || inc.Missing != 30 {
		t.Fatalf("expected incomplete error with 30 missing, got %v", err)
	}
	if g.Status != game.StatusPlaying {
		t.Fatalf("incomplete check must not change status")
	}
}

func TestCheckAcceptsFilledButWrongGrid(t *testing.T) {
	g, err := New(game.Easy, game.NewRand(12))
	if err != nil {
		t.Fatal(err)
	}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g.Puzzle[r][c] == 0 {
				g.Puzzle[r][c] = g.Solution[r][c]%9 + 1
			}
		}
	}
	strict := g.Clone()
	strict.Strict = true

	res, err := g.Check()
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if res.Wrong != 30 || g.Status != game.StatusWon {
		t.Fatalf("got wrong=%d status=%s", res.Wrong, g.Status)
	}

	if _, err := strict.Check(); !errors.Is(err, game.ErrInvalidMove) {
		t.Fatalf("strict check should reject wrong grid, got %v", err)
	}
	if strict.Status != game.StatusPlaying {
		t.Fatalf("strict rejection must not change status")
	}
}

func TestFillSolutionThenCheck(t *testing.T) {
	g, err := New(game.Hard, game.NewRand(5))
	if err != nil {
		t.Fatal(err)
	}
	g.FillSolution()
	res, err := g.Check()
	if err != nil || res.Wrong != 0 || !g.Revealed {
		t.Fatalf("fill+check: res=%+v err=%v", res, err)
	}
	if err := g.Enter(0, 0, 1); !errors.Is(err, game.ErrFinished) {
		t.Fatalf("moves after win must be rejected, got %v", err)
	}
}

package sudoku

import (
	"errors"
	"math/rand"

	"puzzlebox/internal/game"
)

const (
	Size = 9
	Box  = 3

	// MaxGenerateAttempts bounds reseeding when the seeded grid cannot be completed.
	MaxGenerateAttempts = 16
)

var ErrGenerationFailed = errors.New("sudoku: could not complete a seeded grid")

// Grid is a 9x9 board; 0 marks an empty cell.
type Grid [Size][Size]int

// IsSafe reports whether num is absent from row r, column c and their box.
func IsSafe(b *Grid, r, c, num int) bool {
	for i := 0; i < Size; i++ {
		if b[r][i] == num || b[i][c] == num {
			return false
		}
	}
	br, bc := (r/Box)*Box, (c/Box)*Box
	for dr := 0; dr < Box; dr++ {
		for dc := 0; dc < Box; dc++ {
			if b[br+dr][bc+dc] == num {
				return false
			}
		}
	}
	return true
}

func findEmpty(b *Grid) (int, int, bool) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Solve fills b in place by row-major backtracking, digits tried 1..9.
// It returns false and leaves b unchanged when no completion exists.
func Solve(b *Grid) bool {
	r, c, ok := findEmpty(b)
	if !ok {
		return true
	}
	for v := 1; v <= Size; v++ {
		if IsSafe(b, r, c, v) {
			b[r][c] = v
			if Solve(b) {
				return true
			}
			b[r][c] = 0
		}
	}
	return false
}

// GenerateFullBoard seeds the three diagonal boxes with independent
// permutations of 1..9 and completes the grid with Solve.
func GenerateFullBoard(rng *rand.Rand) (Grid, error) {
	for attempt := 0; attempt < MaxGenerateAttempts; attempt++ {
		var b Grid
		for k := 0; k < Size; k += Box {
			nums := rng.Perm(Size)
			for i := 0; i < Box; i++ {
				for j := 0; j < Box; j++ {
					b[k+i][k+j] = nums[i*Box+j] + 1
				}
			}
		}
		if Solve(&b) {
			return b, nil
		}
	}
	return Grid{}, ErrGenerationFailed
}

// MakePuzzle zeroes removeCount randomly chosen cells of a copy of solution.
// The result may admit more than one solution.
func MakePuzzle(solution Grid, removeCount int, rng *rand.Rand) Grid {
	puzzle := solution
	if removeCount > Size*Size {
		removeCount = Size * Size
	}
	positions := rng.Perm(Size * Size)
	for _, p := range positions[:max(removeCount, 0)] {
		puzzle[p/Size][p%Size] = 0
	}
	return puzzle
}

// Conflicts lists filled cells that repeat a digit in their row, column or box.
func Conflicts(b Grid) []game.Point {
	seen := make(map[game.Point]struct{})
	var out []game.Point
	mark := func(p game.Point) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			v := b[r][c]
			if v == 0 {
				continue
			}
			b[r][c] = 0
			if !IsSafe(&b, r, c, v) {
				mark(game.Point{Row: r, Col: c})
			}
			b[r][c] = v
		}
	}
	return out
}

// Complete reports whether every row, column and box is a permutation of 1..9.
func Complete(b Grid) bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] < 1 || b[r][c] > Size {
				return false
			}
		}
	}
	return len(Conflicts(b)) == 0
}

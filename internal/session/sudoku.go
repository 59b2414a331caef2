package session

import (
	"errors"
	"math/rand"

	"puzzlebox/internal/game"
	"puzzlebox/internal/game/sudoku"
)

type sudokuEngine struct {
	g   *sudoku.Game
	rng *rand.Rand
	// wrong cells reported by the last successful check
	wrong int
}

func newSudoku(d game.Difficulty, strict bool, rng *rand.Rand) (*sudokuEngine, error) {
	g, err := sudoku.New(d, rng)
	if err != nil {
		return nil, err
	}
	g.Strict = strict
	return &sudokuEngine{g: g, rng: rng}, nil
}

func (e *sudokuEngine) Type() game.Type     { return game.TypeSudoku }
func (e *sudokuEngine) Status() game.Status { return e.g.Status }

func (e *sudokuEngine) Clone() Engine {
	return &sudokuEngine{g: e.g.Clone(), rng: e.rng, wrong: e.wrong}
}

func (e *sudokuEngine) Apply(a Action) (Outcome, error) {
	switch a.Type {
	case ActEnter:
		return Outcome{}, e.g.Enter(a.Row, a.Col, a.Value)
	case ActHint:
		p, ok := e.g.Hint()
		if !ok {
			return Outcome{}, nil
		}
		return Outcome{Haptic: HapticLight, Result: p}, nil
	case ActSolve:
		e.g.FillSolution()
		return Outcome{}, nil
	case ActCheck:
		res, err := e.g.Check()
		var inc *game.IncompleteError
		if errors.As(err, &inc) {
			return Outcome{Haptic: HapticWarning, Notice: inc.Msg}, err
		}
		if err != nil {
			return Outcome{Haptic: HapticWarning}, err
		}
		e.wrong = res.Wrong
		return Outcome{Haptic: HapticSuccess, Notice: "sudoku solved", Result: res}, nil
	case ActNew, ActRestart:
		g, err := sudoku.New(e.g.Difficulty, e.rng)
		if err != nil {
			return Outcome{}, err
		}
		g.Strict = e.g.Strict
		e.g, e.wrong = g, 0
		return Outcome{Restarted: true}, nil
	}
	return Outcome{}, unknownAction(a)
}

type sudokuView struct {
	Puzzle     sudoku.Grid  `json:"puzzle"`
	Locked     [9][9]bool   `json:"locked"`
	Conflicts  []game.Point `json:"conflicts"`
	Difficulty string       `json:"difficulty"`
	Status     game.Status  `json:"status"`
	Mistakes   int          `json:"mistakes"`
	Hints      int          `json:"hints"`
	Empty      int          `json:"empty"`
	Solution   *sudoku.Grid `json:"solution,omitempty"`
}

func (e *sudokuEngine) View() any {
	v := sudokuView{
		Puzzle:     e.g.Puzzle,
		Conflicts:  sudoku.Conflicts(e.g.Puzzle),
		Difficulty: e.g.Difficulty.Label(),
		Status:     e.g.Status,
		Mistakes:   e.g.Mistakes,
		Hints:      e.g.Hints,
		Empty:      e.g.EmptyCells(),
	}
	for r := 0; r < sudoku.Size; r++ {
		for c := 0; c < sudoku.Size; c++ {
			v.Locked[r][c] = !e.g.Editable(r, c)
		}
	}
	if e.g.Status.Terminal() {
		sol := e.g.Solution
		v.Solution = &sol
	}
	return v
}

func (e *sudokuEngine) Summary() Summary {
	return Summary{
		Level:  e.g.Difficulty.Label(),
		Moves:  e.g.Mistakes + e.g.Hints,
		Errors: e.wrong,
		Details: map[string]any{
			"mistakes": e.g.Mistakes,
			"hints":    e.g.Hints,
			"revealed": e.g.Revealed,
		},
	}
}

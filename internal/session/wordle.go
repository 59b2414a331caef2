package session

import (
	"errors"
	"math/rand"
	"strconv"

	"puzzlebox/internal/game"
	"puzzlebox/internal/game/wordle"
)

type wordleEngine struct {
	g *wordle.Game
}

func newWordle(d game.Difficulty, level int, rng *rand.Rand) *wordleEngine {
	if level <= 0 {
		level = wordle.StartLevel(d)
	}
	return &wordleEngine{g: wordle.New(level, rng)}
}

func (e *wordleEngine) Type() game.Type     { return game.TypeWordle }
func (e *wordleEngine) Status() game.Status { return e.g.Status }

func (e *wordleEngine) Clone() Engine {
	return &wordleEngine{g: e.g.Clone()}
}

func (e *wordleEngine) Apply(a Action) (Outcome, error) {
	switch a.Type {
	case ActLetter:
		return Outcome{}, e.g.Letter(a.Key)
	case ActBackspace:
		e.g.Backspace()
		return Outcome{}, nil
	case ActClearRow:
		e.g.ClearRow()
		return Outcome{}, nil
	case ActSubmit, ActEnter:
		states, err := e.g.Enter()
		var inc *game.IncompleteError
		if errors.As(err, &inc) {
			return Outcome{Haptic: HapticWarning, Notice: inc.Msg}, err
		}
		if err != nil {
			return Outcome{}, err
		}
		switch e.g.Status {
		case game.StatusWon:
			return Outcome{Haptic: HapticSuccess, Notice: "solved", Result: states}, nil
		case game.StatusLost:
			return Outcome{Haptic: HapticError, Notice: "the word was " + e.g.Solution, Result: states}, nil
		}
		return Outcome{Haptic: HapticLight, Result: states}, nil
	case ActNextLevel:
		if !e.g.NextLevel() {
			return Outcome{Notice: "all levels cleared"}, game.Invalid("no more levels")
		}
		return Outcome{Restarted: true}, nil
	case ActNew, ActRestart:
		e.g.Retry()
		return Outcome{Restarted: true}, nil
	}
	return Outcome{}, unknownAction(a)
}

type wordleView struct {
	Level    int                         `json:"level"`
	Cols     int                         `json:"cols"`
	Board    [][]string                  `json:"board"`
	Tiles    [][]wordle.TileState        `json:"tiles"`
	Row      int                         `json:"row"`
	Col      int                         `json:"col"`
	Keys     map[string]wordle.TileState `json:"keys"`
	Status   game.Status                 `json:"status"`
	Solution string                      `json:"solution,omitempty"`
}

// View reveals the solution only once the round is over.
func (e *wordleEngine) View() any {
	cp := e.g.Clone()
	v := wordleView{
		Level:  cp.Level,
		Cols:   cp.Cols,
		Board:  cp.Board,
		Tiles:  cp.Tiles,
		Row:    cp.Row,
		Col:    cp.Col,
		Keys:   cp.Keys,
		Status: cp.Status,
	}
	if cp.Status.Terminal() {
		v.Solution = cp.Solution
	}
	return v
}

func (e *wordleEngine) Summary() Summary {
	return Summary{
		Level: "level " + strconv.Itoa(e.g.Level),
		Moves: e.g.Attempts(),
		Details: map[string]any{
			"word":   e.g.Solution,
			"length": e.g.Cols,
		},
	}
}

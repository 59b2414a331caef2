package session

import (
	"math/rand"

	"puzzlebox/internal/game"
	"puzzlebox/internal/game/minesweeper"
)

type minesweeperEngine struct {
	b     *minesweeper.Board
	rng   *rand.Rand
	moves int
}

func newMinesweeper(d game.Difficulty, flagMode bool, rng *rand.Rand) *minesweeperEngine {
	return &minesweeperEngine{b: minesweeper.New(minesweeper.LevelFor(d), flagMode, rng), rng: rng}
}

func (e *minesweeperEngine) Type() game.Type     { return game.TypeMinesweeper }
func (e *minesweeperEngine) Status() game.Status { return e.b.Status }

func (e *minesweeperEngine) Clone() Engine {
	return &minesweeperEngine{b: e.b.Clone(), rng: e.rng, moves: e.moves}
}

func (e *minesweeperEngine) Apply(a Action) (Outcome, error) {
	var err error
	switch a.Type {
	case ActReveal:
		_, err = e.b.Reveal(a.Row, a.Col)
	case ActFlag, ActLongPress:
		err = e.b.LongPress(a.Row, a.Col)
	case ActPress:
		err = e.b.Press(a.Row, a.Col)
	case ActFlagMode:
		e.b.SetFlagMode(a.On)
		return Outcome{}, nil
	case ActResetSame:
		e.b.ResetSameBoard()
		e.moves = 0
		return Outcome{Restarted: true}, nil
	case ActNew, ActRestart:
		e.b = minesweeper.New(e.b.Level, e.b.FlagMode, e.rng)
		e.moves = 0
		return Outcome{Restarted: true}, nil
	default:
		return Outcome{}, unknownAction(a)
	}
	if err != nil {
		return Outcome{}, err
	}
	e.moves++
	switch e.b.Status {
	case game.StatusLost:
		return Outcome{Haptic: HapticError, Notice: "you hit a mine"}, nil
	case game.StatusWon:
		return Outcome{Haptic: HapticSuccess, Notice: "all safe cells revealed"}, nil
	}
	return Outcome{}, nil
}

// minesweeperCell hides mine data until the cell is open or the game is over.
type minesweeperCell struct {
	Revealed bool `json:"revealed"`
	Flagged  bool `json:"flagged"`
	Mined    bool `json:"mined,omitempty"`
	Near     int  `json:"near,omitempty"`
}

type minesweeperView struct {
	Level     string              `json:"level"`
	Size      int                 `json:"size"`
	Mines     int                 `json:"mines"`
	MinesLeft int                 `json:"mines_left"`
	Remaining int                 `json:"remaining"`
	Flags     int                 `json:"flags"`
	FlagMode  bool                `json:"flag_mode"`
	Status    game.Status         `json:"status"`
	Cells     [][]minesweeperCell `json:"cells"`
}

func (e *minesweeperEngine) View() any {
	b := e.b
	over := b.Status.Terminal()
	v := minesweeperView{
		Level:     b.Level.Label,
		Size:      b.Size(),
		Mines:     b.Level.Mines,
		MinesLeft: b.MinesLeft(),
		Remaining: b.Remaining,
		Flags:     b.Flags,
		FlagMode:  b.FlagMode,
		Status:    b.Status,
		Cells:     make([][]minesweeperCell, b.Size()),
	}
	for r := range b.Cells {
		v.Cells[r] = make([]minesweeperCell, len(b.Cells[r]))
		for c, cell := range b.Cells[r] {
			out := minesweeperCell{Revealed: cell.Revealed, Flagged: cell.Flagged}
			if cell.Revealed || over {
				out.Mined = cell.Mined
				out.Near = cell.Near
			}
			v.Cells[r][c] = out
		}
	}
	return v
}

func (e *minesweeperEngine) Summary() Summary {
	return Summary{
		Level: e.b.Level.Label,
		Moves: e.moves,
		Details: map[string]any{
			"size":      e.b.Size(),
			"mines":     e.b.Level.Mines,
			"remaining": e.b.Remaining,
			"flags":     e.b.Flags,
		},
	}
}

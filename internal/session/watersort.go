package session

import (
	"math/rand"
	"strconv"

	"puzzlebox/internal/game"
	"puzzlebox/internal/game/watersort"
)

type waterSortEngine struct {
	g *watersort.Game
}

func newWaterSort(level int, rng *rand.Rand) *waterSortEngine {
	return &waterSortEngine{g: watersort.New(level, rng)}
}

func (e *waterSortEngine) Type() game.Type     { return game.TypeWaterSort }
func (e *waterSortEngine) Status() game.Status { return e.g.Status }

func (e *waterSortEngine) Clone() Engine {
	return &waterSortEngine{g: e.g.Clone()}
}

func (e *waterSortEngine) Apply(a Action) (Outcome, error) {
	switch a.Type {
	case ActSelect:
		n, err := e.g.Select(a.Index)
		if err != nil {
			// the selection is cleared even when the pour is rejected
			return Outcome{Haptic: HapticWarning, Commit: true}, err
		}
		return e.poured(n), nil
	case ActPour:
		n, err := e.g.Pour(a.Index, a.To)
		if err != nil {
			return Outcome{Haptic: HapticWarning}, err
		}
		return e.poured(n), nil
	case ActUndo:
		if !e.g.Undo() {
			return Outcome{}, game.Invalid("nothing to undo")
		}
		return Outcome{Haptic: HapticLight}, nil
	case ActNew, ActRestart:
		e.g.Reset()
		return Outcome{Restarted: true}, nil
	case ActShuffle:
		if e.g.Status.Terminal() {
			return Outcome{}, game.ErrFinished
		}
		e.g.Shuffle()
		return Outcome{Haptic: HapticMedium}, nil
	case ActNextLevel:
		e.g.NextLevel()
		return Outcome{Restarted: true}, nil
	}
	return Outcome{}, unknownAction(a)
}

func (e *waterSortEngine) poured(n int) Outcome {
	switch {
	case e.g.Status == game.StatusWon:
		return Outcome{Haptic: HapticSuccess, Notice: "level complete"}
	case n > 0:
		return Outcome{Haptic: HapticLight}
	}
	return Outcome{}
}

type waterSortView struct {
	Level    int                `json:"level"`
	Config   watersort.Config   `json:"config"`
	Bottles  []watersort.Bottle `json:"bottles"`
	Selected int                `json:"selected"`
	Moves    int                `json:"moves"`
	CanUndo  bool               `json:"can_undo"`
	Status   game.Status        `json:"status"`
}

func (e *waterSortEngine) View() any {
	cp := e.g.Clone()
	return waterSortView{
		Level:    cp.Level,
		Config:   cp.Config,
		Bottles:  cp.Bottles,
		Selected: cp.Selected,
		Moves:    cp.Moves,
		CanUndo:  cp.CanUndo(),
		Status:   cp.Status,
	}
}

func (e *waterSortEngine) Summary() Summary {
	return Summary{
		Level: "level " + strconv.Itoa(e.g.Level),
		Moves: e.g.Moves,
		Details: map[string]any{
			"level":   e.g.Level,
			"colors":  e.g.Config.Colors,
			"bottles": e.g.Config.Bottles,
		},
	}
}

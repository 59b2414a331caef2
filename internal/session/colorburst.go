package session

import (
	"math/rand"
	"strconv"

	"puzzlebox/internal/game"
	"puzzlebox/internal/game/colorburst"
)

type colorBurstEngine struct {
	g     *colorburst.Game
	taps  int
	bests int
}

func newColorBurst(rng *rand.Rand) *colorBurstEngine {
	return &colorBurstEngine{g: colorburst.New(rng)}
}

func (e *colorBurstEngine) Type() game.Type     { return game.TypeColorBurst }
func (e *colorBurstEngine) Status() game.Status { return e.g.Status }

func (e *colorBurstEngine) Clone() Engine {
	return &colorBurstEngine{g: e.g.Clone(), taps: e.taps, bests: e.bests}
}

func (e *colorBurstEngine) Apply(a Action) (Outcome, error) {
	switch a.Type {
	case ActTap:
		res, err := e.g.Tap(a.Row, a.Col)
		if err != nil {
			return Outcome{}, err
		}
		e.taps++
		if !res.Correct {
			return Outcome{Haptic: HapticWarning, Notice: "wrong color", Result: res}, nil
		}
		e.bests = max(e.bests, e.g.Score)
		return Outcome{Haptic: HapticSuccess, Result: res}, nil
	case ActNew, ActRestart:
		e.g.Reset()
		e.taps = 0
		return Outcome{Restarted: true}, nil
	}
	return Outcome{}, unknownAction(a)
}

type colorBurstView struct {
	Grid    colorburst.Grid `json:"grid"`
	Palette []string        `json:"palette"`
	Level   int             `json:"level"`
	Score   int             `json:"score"`
	Best    int             `json:"best"`
	Colors  int             `json:"colors"`
	Status  game.Status     `json:"status"`
}

func (e *colorBurstEngine) View() any {
	return colorBurstView{
		Grid:    e.g.Grid,
		Palette: colorburst.Palette[:e.g.Colors],
		Level:   e.g.Level,
		Score:   e.g.Score,
		Best:    e.bests,
		Colors:  e.g.Colors,
		Status:  e.g.Status,
	}
}

func (e *colorBurstEngine) Summary() Summary {
	return Summary{
		Level:   "level " + strconv.Itoa(e.g.Level),
		Moves:   e.taps,
		Score:   e.g.Score,
		Details: map[string]any{"best": e.bests, "colors": e.g.Colors},
	}
}

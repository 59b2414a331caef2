package session

import (
	"math/rand"

	"puzzlebox/internal/game"
	"puzzlebox/internal/game/memory"
)

type memoryEngine struct {
	g     *memory.Game
	rng   *rand.Rand
	level game.Difficulty
}

func newMemory(d game.Difficulty, rng *rand.Rand) *memoryEngine {
	return &memoryEngine{g: memory.New(memory.PairsFor(d), rng), rng: rng, level: d}
}

func (e *memoryEngine) Type() game.Type     { return game.TypeMemory }
func (e *memoryEngine) Status() game.Status { return e.g.Status }

func (e *memoryEngine) Clone() Engine {
	return &memoryEngine{g: e.g.Clone(), rng: e.rng, level: e.level}
}

func (e *memoryEngine) Apply(a Action) (Outcome, error) {
	switch a.Type {
	case ActFlip:
		p, err := e.g.Flip(a.Index)
		if err != nil || p == nil {
			return Outcome{}, err
		}
		out := Outcome{After: &Continuation{Delay: p.Delay, Run: resolveMemory}}
		if !p.Match {
			out.Haptic = HapticWarning
		}
		return out, nil
	case ActNew, ActRestart:
		e.g = memory.New(e.g.Pairs, e.rng)
		return Outcome{Restarted: true}, nil
	}
	return Outcome{}, unknownAction(a)
}

func resolveMemory(en Engine) Outcome {
	e, ok := en.(*memoryEngine)
	if !ok || e.g.Pending == nil {
		return Outcome{}
	}
	match := e.g.Pending.Match
	e.g.Resolve()
	if !match {
		return Outcome{}
	}
	if e.g.Status == game.StatusWon {
		return Outcome{Haptic: HapticSuccess, Notice: "all pairs found"}
	}
	return Outcome{Haptic: HapticSuccess}
}

type memoryCard struct {
	ID      string `json:"id"`
	Symbol  string `json:"symbol,omitempty"`
	Flipped bool   `json:"flipped"`
	Matched bool   `json:"matched"`
}

type memoryView struct {
	Pairs   int          `json:"pairs"`
	Cards   []memoryCard `json:"cards"`
	Locked  bool         `json:"locked"`
	Moves   int          `json:"moves"`
	Matches int          `json:"matches"`
	Status  game.Status  `json:"status"`
}

func (e *memoryEngine) View() any {
	v := memoryView{
		Pairs:   e.g.Pairs,
		Cards:   make([]memoryCard, len(e.g.Cards)),
		Locked:  e.g.Locked,
		Moves:   e.g.Moves,
		Matches: e.g.Matches,
		Status:  e.g.Status,
	}
	for i, c := range e.g.Cards {
		v.Cards[i] = memoryCard{ID: c.ID, Flipped: c.Flipped, Matched: c.Matched}
		if c.Flipped || c.Matched {
			v.Cards[i].Symbol = c.Symbol
		}
	}
	return v
}

func (e *memoryEngine) Summary() Summary {
	return Summary{
		Level:   e.level.Label(),
		Moves:   e.g.Moves,
		Details: map[string]any{"pairs": e.g.Pairs},
	}
}

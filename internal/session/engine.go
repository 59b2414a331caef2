package session

import (
	"fmt"
	"time"

	"puzzlebox/internal/domain"
	"puzzlebox/internal/game"
)

// Engine adapts one game to the runtime. Apply mutates the receiver; the
// runtime calls it on a clone and swaps the clone in on success.
type Engine interface {
	Type() game.Type
	Status() game.Status
	Apply(a Action) (Outcome, error)
	View() any
	Summary() Summary
	Clone() Engine
}

// Stepper is implemented by real-time engines driven by the runtime.
type Stepper interface {
	Interval() time.Duration
	Step() Outcome
}

// Summary feeds score and history records once a session finishes.
type Summary struct {
	Level   string         `json:"level"`
	Moves   int            `json:"moves"`
	Score   int            `json:"score"`
	Errors  int            `json:"errors"`
	Details map[string]any `json:"details,omitempty"`
}

// Options configure a new engine.
type Options struct {
	// Difficulty indexes the per-game level tables; nil means
	// Settings.DefaultLevelIndex.
	Difficulty *game.Difficulty
	// Level starts Wordle and Water Sort at a specific level when > 0.
	Level        int
	Settings     domain.Settings
	StrictSudoku bool
	Seed         int64
}

func (o Options) difficulty() game.Difficulty {
	if o.Difficulty != nil {
		return *o.Difficulty
	}
	return game.DifficultyFromIndex(o.Settings.DefaultLevelIndex, game.Medium)
}

// NewEngine builds the engine for t.
func NewEngine(t game.Type, opts Options) (Engine, error) {
	rng := game.NewRand(opts.Seed)
	d := opts.difficulty()
	switch t {
	case game.TypeSudoku:
		return newSudoku(d, opts.StrictSudoku, rng)
	case game.TypeMinesweeper:
		return newMinesweeper(d, opts.Settings.FlagModeOnStart, rng), nil
	case game.TypeSnake:
		return newSnake(d, rng), nil
	case game.TypeMemory:
		return newMemory(d, rng), nil
	case game.TypeTicTacToe:
		return newTicTacToe(d, rng), nil
	case game.TypeWaterSort:
		return newWaterSort(opts.Level, rng), nil
	case game.TypeWordle:
		return newWordle(d, opts.Level, rng), nil
	case game.TypeColorBurst:
		return newColorBurst(rng), nil
	default:
		return nil, fmt.Errorf("unknown game type: %s", t)
	}
}

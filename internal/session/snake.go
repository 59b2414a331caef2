package session

import (
	"math/rand"
	"time"

	"puzzlebox/internal/game"
	"puzzlebox/internal/game/snake"
)

type snakeEngine struct {
	g     *snake.Game
	level game.Difficulty
	steps int
}

func newSnake(d game.Difficulty, rng *rand.Rand) *snakeEngine {
	return &snakeEngine{g: snake.New(snake.GridFor(d), rng), level: d}
}

func (e *snakeEngine) Type() game.Type     { return game.TypeSnake }
func (e *snakeEngine) Status() game.Status { return e.g.Status }

func (e *snakeEngine) Clone() Engine {
	return &snakeEngine{g: e.g.Clone(), level: e.level, steps: e.steps}
}

func (e *snakeEngine) Apply(a Action) (Outcome, error) {
	switch a.Type {
	case ActTurn:
		d, ok := snake.ParseDirection(a.Dir)
		if !ok {
			return Outcome{}, game.Invalid("unknown direction " + a.Dir)
		}
		if e.g.Status.Terminal() {
			return Outcome{}, game.ErrFinished
		}
		e.g.Turn(d)
		return Outcome{}, nil
	case ActNew, ActRestart:
		e.g.Reset()
		e.steps = 0
		return Outcome{Restarted: true}, nil
	}
	return Outcome{}, unknownAction(a)
}

func (e *snakeEngine) Interval() time.Duration { return e.g.Interval }

func (e *snakeEngine) Step() Outcome {
	res := e.g.Step()
	e.steps++
	switch {
	case res.Died:
		return Outcome{Haptic: HapticError, Notice: "collision"}
	case res.Ate:
		return Outcome{Haptic: HapticMedium}
	}
	return Outcome{}
}

type snakeView struct {
	Grid       int          `json:"grid"`
	Body       []game.Point `json:"body"`
	Dir        string       `json:"dir"`
	Food       game.Point   `json:"food"`
	Score      int          `json:"score"`
	IntervalMs int64        `json:"interval_ms"`
	Status     game.Status  `json:"status"`
}

func (e *snakeEngine) View() any {
	return snakeView{
		Grid:       e.g.Grid,
		Body:       e.g.Body(),
		Dir:        string(e.g.Dir),
		Food:       e.g.Food,
		Score:      e.g.Score,
		IntervalMs: e.g.Interval.Milliseconds(),
		Status:     e.g.Status,
	}
}

func (e *snakeEngine) Summary() Summary {
	return Summary{
		Level:   e.level.Label(),
		Moves:   e.steps,
		Score:   e.g.Score,
		Details: map[string]any{"grid": e.g.Grid, "length": len(e.g.Body())},
	}
}

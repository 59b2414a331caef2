package session

import (
	"math/rand"
	"time"

	"puzzlebox/internal/game"
	"puzzlebox/internal/game/tictactoe"
)

const BotDelay = 400 * time.Millisecond

type ticTacToeEngine struct {
	g   *tictactoe.Game
	rng *rand.Rand
}

func newTicTacToe(d game.Difficulty, rng *rand.Rand) *ticTacToeEngine {
	return &ticTacToeEngine{g: tictactoe.New(d), rng: rng}
}

func (e *ticTacToeEngine) Type() game.Type     { return game.TypeTicTacToe }
func (e *ticTacToeEngine) Status() game.Status { return e.g.Status }

func (e *ticTacToeEngine) Clone() Engine {
	return &ticTacToeEngine{g: e.g.Clone(), rng: e.rng}
}

func (e *ticTacToeEngine) Apply(a Action) (Outcome, error) {
	switch a.Type {
	case ActPlay:
		if err := e.g.Play(a.Index); err != nil {
			return Outcome{}, err
		}
		if out, done := roundOutcome(e.g); done {
			return out, nil
		}
		return Outcome{
			Haptic: HapticLight,
			After:  &Continuation{Delay: BotDelay, Run: e.botTurn},
		}, nil
	case ActNew, ActRestart:
		e.g.Restart()
		return Outcome{Restarted: true}, nil
	case ActResetScore:
		e.g.ResetScore()
		return Outcome{Restarted: true, Haptic: HapticMedium}, nil
	case ActSetLevel:
		e.g.Level = game.DifficultyFromIndex(a.Value, e.g.Level)
		e.g.Restart()
		return Outcome{Restarted: true}, nil
	}
	return Outcome{}, unknownAction(a)
}

// botTurn runs on whatever engine is live when the delay expires.
func (e *ticTacToeEngine) botTurn(en Engine) Outcome {
	live, ok := en.(*ticTacToeEngine)
	if !ok {
		return Outcome{}
	}
	if live.g.BotMove(live.rng) < 0 {
		return Outcome{}
	}
	out, _ := roundOutcome(live.g)
	return out
}

func roundOutcome(g *tictactoe.Game) (Outcome, bool) {
	switch g.Outcome {
	case tictactoe.OutcomeX:
		return Outcome{Haptic: HapticSuccess, Notice: "X wins"}, true
	case tictactoe.OutcomeO:
		return Outcome{Haptic: HapticError, Notice: "O wins"}, true
	case tictactoe.OutcomeDraw:
		return Outcome{Haptic: HapticWarning, Notice: "draw"}, true
	}
	return Outcome{}, false
}

// View returns a detached copy; the board is small enough to expose as is.
func (e *ticTacToeEngine) View() any { return *e.g.Clone() }

func (e *ticTacToeEngine) Summary() Summary {
	moves := 0
	for _, m := range e.g.Board {
		if m == tictactoe.Player {
			moves++
		}
	}
	return Summary{
		Level: e.g.Level.Label(),
		Moves: moves,
		Score: e.g.ScoreX,
		Details: map[string]any{
			"score_x": e.g.ScoreX,
			"score_o": e.g.ScoreO,
			"draws":   e.g.Draws,
			"line":    e.g.Line,
		},
	}
}

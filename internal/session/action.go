package session

import (
	"time"

	"puzzlebox/internal/game"
)

// Action is a player input. Which fields matter depends on Type and on the
// game; unused fields are ignored.
type Action struct {
	Type  string `json:"type"`
	Row   int    `json:"row,omitempty"`
	Col   int    `json:"col,omitempty"`
	Index int    `json:"index,omitempty"`
	To    int    `json:"to,omitempty"`
	Value int    `json:"value,omitempty"`
	Key   string `json:"key,omitempty"`
	Dir   string `json:"dir,omitempty"`
	On    bool   `json:"on,omitempty"`
}

const (
	// shared
	ActNew     = "new"
	ActRestart = "restart"

	// sudoku
	ActEnter = "enter"
	ActHint  = "hint"
	ActSolve = "solve"
	ActCheck = "check"

	// minesweeper
	ActReveal    = "reveal"
	ActFlag      = "flag"
	ActPress     = "press"
	ActLongPress = "long_press"
	ActFlagMode  = "flag_mode"
	ActResetSame = "reset_same"

	// snake
	ActTurn = "turn"

	// memory
	ActFlip = "flip"

	// tic-tac-toe
	ActPlay       = "play"
	ActResetScore = "reset_score"
	ActSetLevel   = "set_level"

	// water sort
	ActSelect    = "select"
	ActPour      = "pour"
	ActUndo      = "undo"
	ActShuffle   = "shuffle"
	ActNextLevel = "next_level"

	// wordle
	ActLetter    = "letter"
	ActBackspace = "backspace"
	ActClearRow  = "clear_row"
	ActSubmit    = "submit"

	// color burst
	ActTap = "tap"
)

func unknownAction(a Action) error {
	return game.Invalid("unknown action " + a.Type)
}

// Haptic is a fire-and-forget feedback request.
type Haptic string

const (
	HapticNone    Haptic = ""
	HapticSuccess Haptic = "success"
	HapticWarning Haptic = "warning"
	HapticError   Haptic = "error"
	HapticLight   Haptic = "light"
	HapticMedium  Haptic = "medium"
)

// Continuation runs against the live engine after Delay unless the session
// was reset or closed in between.
type Continuation struct {
	Delay time.Duration
	Run   func(e Engine) Outcome
}

// Outcome is what an action or continuation asks the runtime to do.
type Outcome struct {
	Haptic Haptic
	Notice string
	// Restarted marks a fresh board: elapsed time is zeroed and pending
	// continuations are discarded.
	Restarted bool
	// Commit keeps the mutated engine even when the action returned an error.
	Commit bool
	After  *Continuation
	// Result carries extra data for the caller, e.g. a hint position.
	Result any
}

package game

import (
	"errors"
	"math/rand"
	"time"
)

type Type string

const (
	TypeSudoku      Type = "sudoku"
	TypeMinesweeper Type = "minesweeper"
	TypeSnake       Type = "snake"
	TypeMemory      Type = "memory"
	TypeTicTacToe   Type = "tictactoe"
	TypeWaterSort   Type = "watersort"
	TypeWordle      Type = "wordle"
	TypeColorBurst  Type = "colorburst"
)

// Types lists every game in menu order.
var Types = []Type{
	TypeSudoku,
	TypeMinesweeper,
	TypeSnake,
	TypeMemory,
	TypeTicTacToe,
	TypeWaterSort,
	TypeWordle,
	TypeColorBurst,
}

func (t Type) Valid() bool {
	for _, x := range Types {
		if x == t {
			return true
		}
	}
	return false
}

type Status string

const (
	StatusReady   Status = "ready"
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
	StatusDraw    Status = "draw"
)

// Terminal reports whether no further moves are accepted until reset.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost || s == StatusDraw
}

var (
	// ErrInvalidMove is the parent of every rejected move.
	ErrInvalidMove = errors.New("invalid move")
	// ErrIncomplete is returned when a submission is missing input.
	ErrIncomplete = errors.New("incomplete input")

	ErrFinished    = invalid("game is finished")
	ErrOutOfRange  = invalid("position out of range")
	ErrLocked      = invalid("cell is locked")
	ErrOccupied    = invalid("cell is occupied")
	ErrNotYourTurn = invalid("not your turn")
)

// moveError keeps a specific message while matching ErrInvalidMove.
type moveError struct{ msg string }

func (e *moveError) Error() string        { return e.msg }
func (e *moveError) Is(target error) bool { return target == ErrInvalidMove }

func invalid(msg string) error { return &moveError{msg: msg} }

// Invalid builds a rejected-move error that satisfies errors.Is(err, ErrInvalidMove).
func Invalid(msg string) error { return invalid(msg) }

// IncompleteError carries how much input is still missing.
type IncompleteError struct {
	Missing int
	Msg     string
}

func (e *IncompleteError) Error() string        { return e.Msg }
func (e *IncompleteError) Is(target error) bool { return target == ErrIncomplete }

// NewRand returns a rand source for generators; seed 0 means time based.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Difficulty is the settings-level index: 0 easy, 1 medium, 2 hard.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// DifficultyFromIndex clamps unknown indexes to def.
func DifficultyFromIndex(i int, def Difficulty) Difficulty {
	if i < int(Easy) || i > int(Hard) {
		return def
	}
	return Difficulty(i)
}

func (d Difficulty) Label() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return "unknown"
}

// ParseDifficulty accepts "easy" | "medium" | "hard".
func ParseDifficulty(s string) (Difficulty, bool) {
	switch s {
	case "easy":
		return Easy, true
	case "medium":
		return Medium, true
	case "hard":
		return Hard, true
	}
	return 0, false
}

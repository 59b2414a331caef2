package wordle

import (
	"fmt"
	"math/rand"
	"strings"

	"puzzlebox/internal/game"
)

const (
	Rows        = 5
	TotalLevels = 100
)

type TileState string

const (
	Idle    TileState = "idle"
	Correct TileState = "correct"
	Present TileState = "present"
	Absent  TileState = "absent"
)

// StartLevels maps the settings difficulty index to the first level.
var StartLevels = [3]int{1, 21, 41}

func StartLevel(d game.Difficulty) int {
	if d < game.Easy || d > game.Hard {
		return StartLevels[0]
	}
	return StartLevels[d]
}

// LengthForLevel is the fallback word length when a level has no word.
func LengthForLevel(n int) int {
	switch {
	case n <= 30:
		return 5
	case n <= 55:
		return 6
	case n <= 75:
		return 7
	case n <= 90:
		return 8
	case n <= 97:
		return 9
	}
	return 10
}

// SolutionFor returns the level's word, else the first word of the fallback
// length, else a random word.
func SolutionFor(level int, rng *rand.Rand) string {
	if level >= 1 && level <= len(Words) {
		return Words[level-1]
	}
	n := LengthForLevel(level)
	for _, w := range Words {
		if len(w) == n {
			return w
		}
	}
	return Words[rng.Intn(len(Words))]
}

// Score colors a guess against the solution in two passes: exact matches
// consume their solution letter first, then remaining letters match the
// leftmost unconsumed occurrence.
func Score(guess, solution string) []TileState {
	g, s := []byte(guess), []byte(solution)
	out := make([]TileState, len(g))
	for i := range out {
		out[i] = Absent
	}
	for i := range g {
		if i < len(s) && g[i] == s[i] {
			out[i] = Correct
			s[i] = 0
		}
	}
	for i := range g {
		if out[i] == Correct {
			continue
		}
		if j := strings.IndexByte(string(s), g[i]); j >= 0 {
			out[i] = Present
			s[j] = 0
		}
	}
	return out
}

// MergeKeys folds a scored row into the keyboard: correct always wins,
// present never downgrades correct, absent only fills unknown keys.
func MergeKeys(keys map[string]TileState, guess string, states []TileState) {
	for i, st := range states {
		letter := string(guess[i])
		prev, seen := keys[letter]
		switch st {
		case Correct:
			keys[letter] = Correct
		case Present:
			if prev != Correct {
				keys[letter] = Present
			}
		default:
			if !seen {
				keys[letter] = Absent
			}
		}
	}
}

type Game struct {
	Level    int                  `json:"level"`
	Solution string               `json:"-"`
	Cols     int                  `json:"cols"`
	Board    [][]string           `json:"board"`
	Tiles    [][]TileState        `json:"tiles"`
	Row      int                  `json:"row"`
	Col      int                  `json:"col"`
	Keys     map[string]TileState `json:"keys"`
	Status   game.Status          `json:"status"`
	rng      *rand.Rand
}

func New(level int, rng *rand.Rand) *Game {
	g := &Game{rng: rng}
	g.setLevel(level)
	return g
}

func (g *Game) setLevel(level int) {
	if level < 1 {
		level = 1
	}
	g.Level = level
	g.Solution = SolutionFor(level, g.rng)
	g.Cols = len(g.Solution)
	g.Board = make([][]string, Rows)
	g.Tiles = make([][]TileState, Rows)
	for r := 0; r < Rows; r++ {
		g.Board[r] = make([]string, g.Cols)
		g.Tiles[r] = make([]TileState, g.Cols)
		for c := range g.Tiles[r] {
			g.Tiles[r][c] = Idle
		}
	}
	g.Row, g.Col = 0, 0
	g.Keys = make(map[string]TileState)
	g.Status = game.StatusPlaying
}

func (g *Game) Clone() *Game {
	cp := *g
	cp.Board = make([][]string, len(g.Board))
	cp.Tiles = make([][]TileState, len(g.Tiles))
	for r := range g.Board {
		cp.Board[r] = append([]string(nil), g.Board[r]...)
		cp.Tiles[r] = append([]TileState(nil), g.Tiles[r]...)
	}
	cp.Keys = make(map[string]TileState, len(g.Keys))
	for k, v := range g.Keys {
		cp.Keys[k] = v
	}
	return &cp
}

// Letter appends one A-Z letter (case-insensitive) to the current row.
func (g *Game) Letter(ch string) error {
	if g.Status.Terminal() {
		return game.ErrFinished
	}
	l := strings.ToUpper(ch)
	if len(l) != 1 || l[0] < 'A' || l[0] > 'Z' {
		return game.Invalid(fmt.Sprintf("%q is not a letter", ch))
	}
	if g.Col >= g.Cols {
		return game.Invalid("row is full")
	}
	g.Board[g.Row][g.Col] = l
	g.Col++
	return nil
}

func (g *Game) Backspace() {
	if g.Status.Terminal() || g.Col == 0 {
		return
	}
	g.Col--
	g.Board[g.Row][g.Col] = ""
}

func (g *Game) ClearRow() {
	if g.Status.Terminal() {
		return
	}
	for c := range g.Board[g.Row] {
		g.Board[g.Row][c] = ""
	}
	g.Col = 0
}

// Enter submits the current row. It returns the row's tile states.
func (g *Game) Enter() ([]TileState, error) {
	if g.Status.Terminal() {
		return nil, game.ErrFinished
	}
	if g.Col < g.Cols {
		return nil, &game.IncompleteError{
			Missing: g.Cols - g.Col,
			Msg:     fmt.Sprintf("need %d letters", g.Cols),
		}
	}
	guess := strings.Join(g.Board[g.Row], "")
	states := Score(guess, g.Solution)
	copy(g.Tiles[g.Row], states)
	MergeKeys(g.Keys, guess, states)

	won := true
	for _, s := range states {
		if s != Correct {
			won = false
			break
		}
	}
	switch {
	case won:
		g.Status = game.StatusWon
	case g.Row+1 >= Rows:
		g.Status = game.StatusLost
	default:
		g.Row++
		g.Col = 0
	}
	return states, nil
}

// NextLevel advances after a finished level; it reports false on the last one.
func (g *Game) NextLevel() bool {
	if g.Level >= TotalLevels {
		return false
	}
	g.setLevel(g.Level + 1)
	return true
}

func (g *Game) Retry() { g.setLevel(g.Level) }

// Attempts is the number of submitted rows.
func (g *Game) Attempts() int {
	if g.Status.Terminal() {
		return g.Row + 1
	}
	return g.Row
}

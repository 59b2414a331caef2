package watersort

import (
	"math/rand"

	"puzzlebox/internal/game"
)

const (
	Rows       = 4
	MaxColors  = 11
	MaxBottles = 10
)

// Bottle is a stack of color ids, bottom first.
type Bottle []int

func (b Bottle) top() (int, bool) {
	if len(b) == 0 {
		return 0, false
	}
	return b[len(b)-1], true
}

// topRun counts the contiguous same-color units on top.
func (b Bottle) topRun() int {
	c, ok := b.top()
	if !ok {
		return 0
	}
	n := 0
	for i := len(b) - 1; i >= 0 && b[i] == c; i-- {
		n++
	}
	return n
}

type Config struct {
	Rows    int `json:"rows"`
	Colors  int `json:"colors"`
	Bottles int `json:"bottles"`
}

// LevelConfig grows the palette every third level. Colors stay below the
// bottle cap so at least one bottle starts empty.
func LevelConfig(level int) Config {
	colors := min(2+level/3, MaxColors, MaxBottles-1)
	return Config{
		Rows:    Rows,
		Colors:  colors,
		Bottles: min(colors+2, MaxBottles),
	}
}

type Game struct {
	Level    int         `json:"level"`
	Config   Config      `json:"config"`
	Bottles  []Bottle    `json:"bottles"`
	Selected int         `json:"selected"` // -1 when nothing is selected
	Status   game.Status `json:"status"`
	Moves    int         `json:"moves"`
	history  [][]Bottle
	rng      *rand.Rand
}

func New(level int, rng *rand.Rand) *Game {
	g := &Game{rng: rng}
	g.setLevel(max(level, 1))
	return g
}

// FromBottles starts a game on a fixed layout.
func FromBottles(cfg Config, bottles []Bottle, rng *rand.Rand) *Game {
	g := &Game{Level: 1, Config: cfg, Selected: -1, Status: game.StatusPlaying, rng: rng}
	g.Bottles = cloneBottles(bottles)
	if g.completed() {
		g.Status = game.StatusWon
	}
	return g
}

func cloneBottles(bs []Bottle) []Bottle {
	out := make([]Bottle, len(bs))
	for i, b := range bs {
		out[i] = append(Bottle(nil), b...)
	}
	return out
}

func (g *Game) Clone() *Game {
	cp := *g
	cp.Bottles = cloneBottles(g.Bottles)
	cp.history = make([][]Bottle, len(g.history))
	for i, h := range g.history {
		cp.history[i] = cloneBottles(h)
	}
	return &cp
}

func (g *Game) setLevel(level int) {
	g.Level = level
	g.Config = LevelConfig(level)
	units := make([]int, 0, g.Config.Colors*g.Config.Rows)
	for c := 0; c < g.Config.Colors; c++ {
		for j := 0; j < g.Config.Rows; j++ {
			units = append(units, c)
		}
	}
	g.deal(units)
}

// deal shuffles units into the first Colors bottles; the rest stay empty.
func (g *Game) deal(units []int) {
	g.rng.Shuffle(len(units), func(i, j int) { units[i], units[j] = units[j], units[i] })
	g.Bottles = make([]Bottle, g.Config.Bottles)
	idx := 0
	for b := 0; b < g.Config.Colors; b++ {
		for j := 0; j < g.Config.Rows && idx < len(units); j++ {
			g.Bottles[b] = append(g.Bottles[b], units[idx])
			idx++
		}
	}
	g.Selected = -1
	g.history = nil
	g.Moves = 0
	g.Status = game.StatusPlaying
	if g.completed() {
		g.Status = game.StatusWon
	}
}

func (g *Game) valid(i int) bool { return i >= 0 && i < len(g.Bottles) }

// CanPour: distinct bottles, source non-empty, target not full, and target
// empty or topped by the same color.
func (g *Game) CanPour(from, to int) bool {
	if from == to || !g.valid(from) || !g.valid(to) {
		return false
	}
	src, dst := g.Bottles[from], g.Bottles[to]
	if len(src) == 0 || len(dst) >= g.Config.Rows {
		return false
	}
	dt, ok := dst.top()
	if !ok {
		return true
	}
	st, _ := src.top()
	return st == dt
}

// Pour moves min(top run, free space) units and records the prior layout.
func (g *Game) Pour(from, to int) (int, error) {
	if g.Status.Terminal() {
		return 0, game.ErrFinished
	}
	if !g.CanPour(from, to) {
		return 0, game.Invalid("cannot pour there")
	}
	g.history = append(g.history, cloneBottles(g.Bottles))
	n := min(g.Bottles[from].topRun(), g.Config.Rows-len(g.Bottles[to]))
	for i := 0; i < n; i++ {
		src := g.Bottles[from]
		g.Bottles[to] = append(g.Bottles[to], src[len(src)-1])
		g.Bottles[from] = src[:len(src)-1]
	}
	g.Moves++
	if g.completed() {
		g.Status = game.StatusWon
	}
	return n, nil
}

// Select handles a tap on bottle i: select, deselect, or pour into i.
// A rejected pour clears the selection.
func (g *Game) Select(i int) (poured int, err error) {
	if g.Status.Terminal() {
		return 0, nil
	}
	if !g.valid(i) {
		return 0, game.ErrOutOfRange
	}
	switch {
	case g.Selected == -1:
		if len(g.Bottles[i]) > 0 {
			g.Selected = i
		}
		return 0, nil
	case g.Selected == i:
		g.Selected = -1
		return 0, nil
	}
	from := g.Selected
	g.Selected = -1
	return g.Pour(from, i)
}

func (g *Game) Undo() bool {
	if len(g.history) == 0 {
		return false
	}
	last := len(g.history) - 1
	g.Bottles = g.history[last]
	g.history = g.history[:last]
	g.Selected = -1
	if g.completed() {
		g.Status = game.StatusWon
	} else {
		g.Status = game.StatusPlaying
	}
	return true
}

func (g *Game) CanUndo() bool { return len(g.history) > 0 }

// Reset deals the current level again.
func (g *Game) Reset() { g.setLevel(g.Level) }

// Shuffle redistributes the units currently on the board.
func (g *Game) Shuffle() {
	var units []int
	for _, b := range g.Bottles {
		units = append(units, b...)
	}
	g.deal(units)
}

func (g *Game) NextLevel() { g.setLevel(g.Level + 1) }

func (g *Game) completed() bool {
	for _, b := range g.Bottles {
		if len(b) == 0 {
			continue
		}
		if len(b) != g.Config.Rows {
			return false
		}
		for _, c := range b {
			if c != b[0] {
				return false
			}
		}
	}
	return true
}

// ColorCounts tallies units per color id across all bottles.
func (g *Game) ColorCounts() map[int]int {
	out := make(map[int]int)
	for _, b := range g.Bottles {
		for _, c := range b {
			out[c]++
		}
	}
	return out
}

package snake

import (
	"math/rand"
	"time"

	"github.com/gammazero/deque"

	"puzzlebox/internal/game"
)

const (
	StartInterval = 200 * time.Millisecond
	MinInterval   = 60 * time.Millisecond
	SpeedUp       = 5 * time.Millisecond
)

// GridSizes maps the settings difficulty index to the board edge.
var GridSizes = [3]int{10, 15, 20}

func GridFor(d game.Difficulty) int {
	if d < game.Easy || d > game.Hard {
		return GridSizes[game.Medium]
	}
	return GridSizes[d]
}

type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

func (d Direction) delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

func ParseDirection(s string) (Direction, bool) {
	switch d := Direction(s); d {
	case Up, Down, Left, Right:
		return d, true
	}
	return "", false
}

type Game struct {
	Grid     int
	Dir      Direction
	Food     game.Point
	Score    int
	Interval time.Duration
	Status   game.Status

	body   deque.Deque[game.Point] // head at the front
	turned bool
	rng    *rand.Rand
}

func New(grid int, rng *rand.Rand) *Game {
	g := &Game{Grid: grid, rng: rng}
	g.Reset()
	return g
}

// Reset puts a two-cell snake in the middle heading right.
func (g *Game) Reset() {
	mid := g.Grid / 2
	g.body.Clear()
	g.body.PushBack(game.Point{Row: mid, Col: mid})
	g.body.PushBack(game.Point{Row: mid, Col: mid - 1})
	g.Dir = Right
	g.Score = 0
	g.Interval = StartInterval
	g.Status = game.StatusPlaying
	g.turned = false
	g.Food = g.randomFood()
}

func (g *Game) Clone() *Game {
	cp := &Game{
		Grid:     g.Grid,
		Dir:      g.Dir,
		Food:     g.Food,
		Score:    g.Score,
		Interval: g.Interval,
		Status:   g.Status,
		turned:   g.turned,
		rng:      g.rng,
	}
	for i := 0; i < g.body.Len(); i++ {
		cp.body.PushBack(g.body.At(i))
	}
	return cp
}

// Body lists the segments head first.
func (g *Game) Body() []game.Point {
	out := make([]game.Point, g.body.Len())
	for i := range out {
		out[i] = g.body.At(i)
	}
	return out
}

func (g *Game) Head() game.Point { return g.body.Front() }

func (g *Game) occupied(p game.Point) bool {
	for i := 0; i < g.body.Len(); i++ {
		if g.body.At(i) == p {
			return true
		}
	}
	return false
}

func (g *Game) randomFood() game.Point {
	if g.body.Len() >= g.Grid*g.Grid {
		return game.Point{Row: -1, Col: -1}
	}
	for {
		p := game.Point{Row: g.rng.Intn(g.Grid), Col: g.rng.Intn(g.Grid)}
		if !g.occupied(p) {
			return p
		}
	}
}

// Turn changes direction for the next step. Reversals and a second turn
// before the next step are ignored.
func (g *Game) Turn(d Direction) bool {
	if g.Status.Terminal() || g.turned {
		return false
	}
	dr, dc := d.delta()
	if dr == 0 && dc == 0 {
		return false
	}
	cr, cc := g.Dir.delta()
	if dr+cr == 0 && dc+cc == 0 {
		return false
	}
	g.Dir = d
	g.turned = true
	return true
}

// StepResult reports what the last step did.
type StepResult struct {
	Ate  bool
	Died bool
}

// Step advances the snake one cell.
func (g *Game) Step() StepResult {
	if g.Status.Terminal() {
		return StepResult{}
	}
	g.turned = false
	dr, dc := g.Dir.delta()
	head := g.Head()
	next := game.Point{Row: head.Row + dr, Col: head.Col + dc}
	if !game.InBounds(next.Row, next.Col, g.Grid, g.Grid) || g.occupied(next) {
		g.Status = game.StatusLost
		return StepResult{Died: true}
	}
	g.body.PushFront(next)
	if next == g.Food {
		g.Score++
		g.Interval = max(g.Interval-SpeedUp, MinInterval)
		g.Food = g.randomFood()
		if g.Food.Row < 0 {
			g.Status = game.StatusWon
		}
		return StepResult{Ate: true}
	}
	g.body.PopBack()
	return StepResult{}
}

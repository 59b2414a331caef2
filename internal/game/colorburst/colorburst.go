package colorburst

import (
	"math"
	"math/rand"

	"puzzlebox/internal/game"
)

const (
	Rows        = 10
	Cols        = 10
	MaxLevel    = 100
	StartColors = 3
	empty       = -1
)

// Palette lists the colors a cell id refers to.
var Palette = []string{
	"#FF4D6D", "#FFD24D", "#6DF5A7", "#5DB7FF",
	"#C07BFF", "#FF9E6D", "#48E0C1", "#FFD9F1",
}

type Cell struct {
	Color  int  `json:"color"`
	Locked bool `json:"locked"`
}

type Grid [Rows][Cols]Cell

type Game struct {
	Grid   Grid        `json:"grid"`
	Level  int         `json:"level"`
	Score  int         `json:"score"`
	Colors int         `json:"colors"`
	Status game.Status `json:"status"`
	rng    *rand.Rand
}

// TapResult describes the effect of one tap.
type TapResult struct {
	Correct bool `json:"correct"`
	Cleared int  `json:"cleared"`
	Gain    int  `json:"gain"`
}

func New(rng *rand.Rand) *Game {
	g := &Game{rng: rng}
	g.Reset()
	return g
}

// FromGrid starts on a fixed grid at level 1.
func FromGrid(grid Grid, rng *rand.Rand) *Game {
	return &Game{Grid: grid, Level: 1, Colors: StartColors, Status: game.StatusPlaying, rng: rng}
}

func (g *Game) Reset() {
	g.Level = 1
	g.Score = 0
	g.Colors = StartColors
	g.Status = game.StatusPlaying
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			g.Grid[r][c] = Cell{Color: g.randomColor()}
		}
	}
}

func (g *Game) Clone() *Game {
	cp := *g
	return &cp
}

func (g *Game) randomColor() int {
	return g.rng.Intn(min(g.Colors, len(Palette)))
}

// MostFrequent returns the color with the highest count; ties go to the
// color whose first cell comes earliest in row-major order.
func (g *Game) MostFrequent() (color, count int) {
	counts := make(map[int]int)
	var order []int
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			col := g.Grid[r][c].Color
			if col == empty {
				continue
			}
			if counts[col] == 0 {
				order = append(order, col)
			}
			counts[col]++
		}
	}
	color = empty
	for _, col := range order {
		if counts[col] > count {
			color, count = col, counts[col]
		}
	}
	return color, count
}

// Tap pops every unlocked cell of the most frequent color when (r, c) holds
// it. Any other tap shuffles the unlocked colors and zeroes the score.
func (g *Game) Tap(r, c int) (TapResult, error) {
	if !game.InBounds(r, c, Rows, Cols) {
		return TapResult{}, game.ErrOutOfRange
	}
	cell := g.Grid[r][c]
	most, _ := g.MostFrequent()
	if cell.Locked || most == empty || cell.Color != most {
		g.penalty()
		return TapResult{}, nil
	}

	n := 0
	for rr := 0; rr < Rows; rr++ {
		for cc := 0; cc < Cols; cc++ {
			if x := &g.Grid[rr][cc]; !x.Locked && x.Color == most {
				x.Color = empty
				n++
			}
		}
	}
	g.collapse()
	g.refill()

	gain := n * int(math.Ceil(10*(1+float64(g.Level)/20)))
	g.Score += gain
	next := min(MaxLevel, g.Level+1)
	if next%3 == 0 && g.Colors < len(Palette) {
		g.Colors++
	}
	g.Level = next
	return TapResult{Correct: true, Cleared: n, Gain: gain}, nil
}

func (g *Game) penalty() {
	var colors []int
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if !g.Grid[r][c].Locked {
				colors = append(colors, g.Grid[r][c].Color)
			}
		}
	}
	g.rng.Shuffle(len(colors), func(i, j int) { colors[i], colors[j] = colors[j], colors[i] })
	i := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if !g.Grid[r][c].Locked {
				g.Grid[r][c].Color = colors[i]
				i++
			}
		}
	}
	g.Score = 0
}

// collapse lets cells fall to the bottom of each column.
func (g *Game) collapse() {
	for c := 0; c < Cols; c++ {
		w := Rows - 1
		for r := Rows - 1; r >= 0; r-- {
			if g.Grid[r][c].Color != empty {
				g.Grid[w][c] = g.Grid[r][c]
				w--
			}
		}
		for ; w >= 0; w-- {
			g.Grid[w][c] = Cell{Color: empty}
		}
	}
}

func (g *Game) refill() {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if g.Grid[r][c].Color == empty {
				g.Grid[r][c] = Cell{Color: g.randomColor()}
			}
		}
	}
}

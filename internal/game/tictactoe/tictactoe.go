package tictactoe

import (
	"math/rand"

	"puzzlebox/internal/game"
)

type Mark string

const (
	Empty  Mark = ""
	Player Mark = "X"
	Bot    Mark = "O"
)

// Lines are the eight winning triples in scan order.
var Lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

type Board [9]Mark

// Winner returns the mark owning a full line and that line.
func (b Board) Winner() (Mark, []int) {
	for _, l := range Lines {
		m := b[l[0]]
		if m != Empty && m == b[l[1]] && m == b[l[2]] {
			return m, []int{l[0], l[1], l[2]}
		}
	}
	return Empty, nil
}

func (b Board) Full() bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return true
}

func (b Board) emptySlots() []int {
	var out []int
	for i, m := range b {
		if m == Empty {
			out = append(out, i)
		}
	}
	return out
}

// Outcome of a finished round.
type Outcome string

const (
	OutcomeNone Outcome = ""
	OutcomeX    Outcome = "x"
	OutcomeO    Outcome = "o"
	OutcomeDraw Outcome = "draw"
)

type Game struct {
	Board   Board           `json:"board"`
	Turn    Mark            `json:"turn"`
	Level   game.Difficulty `json:"level"`
	Status  game.Status     `json:"status"`
	Outcome Outcome         `json:"outcome,omitempty"`
	Line    []int           `json:"winning_line,omitempty"`

	ScoreX int `json:"score_x"`
	ScoreO int `json:"score_o"`
	Draws  int `json:"draws"`
}

func New(level game.Difficulty) *Game {
	g := &Game{Level: level}
	g.Restart()
	return g
}

func (g *Game) Clone() *Game {
	cp := *g
	cp.Line = append([]int(nil), g.Line...)
	return &cp
}

// Restart clears the board and keeps the tally.
func (g *Game) Restart() {
	g.Board = Board{}
	g.Turn = Player
	g.Status = game.StatusPlaying
	g.Outcome = OutcomeNone
	g.Line = nil
}

// ResetScore zeroes the tally and starts a new round.
func (g *Game) ResetScore() {
	g.ScoreX, g.ScoreO, g.Draws = 0, 0, 0
	g.Restart()
}

// Play places X at i. When the round goes on the bot is to move and the
// caller should schedule BotMove.
func (g *Game) Play(i int) error {
	if g.Status.Terminal() {
		return game.ErrFinished
	}
	if g.Turn != Player {
		return game.ErrNotYourTurn
	}
	if i < 0 || i >= len(g.Board) {
		return game.ErrOutOfRange
	}
	if g.Board[i] != Empty {
		return game.ErrOccupied
	}
	g.Board[i] = Player
	if !g.settle(Player) {
		g.Turn = Bot
	}
	return nil
}

// BotMove lets O play according to the level. It returns the chosen slot,
// or -1 when it is not the bot's turn.
func (g *Game) BotMove(rng *rand.Rand) int {
	if g.Status.Terminal() || g.Turn != Bot {
		return -1
	}
	var move int
	switch g.Level {
	case game.Easy:
		move = RandomMove(g.Board, rng)
	case game.Medium:
		move = SmartMove(g.Board, rng)
	default:
		move = BestMove(g.Board)
	}
	if move < 0 {
		return -1
	}
	g.Board[move] = Bot
	if !g.settle(Bot) {
		g.Turn = Player
	}
	return move
}

// settle records a win or draw for the mark that just played.
func (g *Game) settle(m Mark) bool {
	if w, line := g.Board.Winner(); w == m {
		g.Line = line
		if m == Player {
			g.Status, g.Outcome = game.StatusWon, OutcomeX
			g.ScoreX++
		} else {
			g.Status, g.Outcome = game.StatusLost, OutcomeO
			g.ScoreO++
		}
		return true
	}
	if g.Board.Full() {
		g.Status = game.StatusDraw
		g.Outcome = OutcomeDraw
		g.Draws++
		return true
	}
	return false
}

func RandomMove(b Board, rng *rand.Rand) int {
	empty := b.emptySlots()
	if len(empty) == 0 {
		return -1
	}
	return empty[rng.Intn(len(empty))]
}

// SmartMove wins if it can, otherwise blocks X, otherwise plays randomly.
func SmartMove(b Board, rng *rand.Rand) int {
	for _, target := range []Mark{Bot, Player} {
		for _, l := range Lines {
			count, free := 0, -1
			for _, i := range l {
				switch b[i] {
				case target:
					count++
				case Empty:
					free = i
				}
			}
			if count == 2 && free >= 0 {
				return free
			}
		}
	}
	return RandomMove(b, rng)
}

// BestMove returns the first slot with the maximal minimax value for O.
func BestMove(b Board) int {
	best, move := -2, -1
	for i := range b {
		if b[i] != Empty {
			continue
		}
		b[i] = Bot
		score := minimax(b, false)
		b[i] = Empty
		if score > best {
			best, move = score, i
		}
	}
	return move
}

func minimax(b Board, maximizing bool) int {
	if w, _ := b.Winner(); w == Bot {
		return 1
	} else if w == Player {
		return -1
	}
	if b.Full() {
		return 0
	}
	if maximizing {
		best := -2
		for i := range b {
			if b[i] == Empty {
				b[i] = Bot
				best = max(best, minimax(b, false))
				b[i] = Empty
			}
		}
		return best
	}
	best := 2
	for i := range b {
		if b[i] == Empty {
			b[i] = Player
			best = min(best, minimax(b, true))
			b[i] = Empty
		}
	}
	return best
}

package memory

import (
	"math/rand"
	"strconv"
	"time"

	"puzzlebox/internal/game"
)

const (
	MatchDelay    = 300 * time.Millisecond
	MismatchDelay = 600 * time.Millisecond
)

// PairsByLevel maps the settings difficulty index to the pair count.
var PairsByLevel = [3]int{4, 6, 8}

var Symbols = []string{
	"🍎", "🍌", "🍇", "🍓", "🍍", "🥑", "🍑",
	"🍒", "🍉", "🍋", "🥝", "🥥", "🍐", "🍊",
}

func PairsFor(d game.Difficulty) int {
	if d < game.Easy || d > game.Hard {
		return PairsByLevel[game.Medium]
	}
	return PairsByLevel[d]
}

type Card struct {
	ID      string `json:"id"`
	Symbol  string `json:"symbol"`
	Flipped bool   `json:"flipped"`
	Matched bool   `json:"matched"`
}

// Pending is a second flip waiting to be resolved after Delay.
type Pending struct {
	First  int           `json:"first"`
	Second int           `json:"second"`
	Match  bool          `json:"match"`
	Delay  time.Duration `json:"-"`
}

type Game struct {
	Pairs   int         `json:"pairs"`
	Cards   []Card      `json:"cards"`
	First   int         `json:"first"` // -1 when no card is waiting for a partner
	Locked  bool        `json:"locked"`
	Moves   int         `json:"moves"`
	Matches int         `json:"matches"`
	Status  game.Status `json:"status"`
	Pending *Pending    `json:"pending,omitempty"`
}

// BuildDeck takes the first pairs symbols twice and shuffles them.
func BuildDeck(pairs int, rng *rand.Rand) []Card {
	pairs = min(max(pairs, 1), len(Symbols))
	syms := make([]string, 0, pairs*2)
	syms = append(syms, Symbols[:pairs]...)
	syms = append(syms, Symbols[:pairs]...)
	rng.Shuffle(len(syms), func(i, j int) { syms[i], syms[j] = syms[j], syms[i] })
	deck := make([]Card, len(syms))
	for i, s := range syms {
		deck[i] = Card{ID: strconv.Itoa(i), Symbol: s}
	}
	return deck
}

func New(pairs int, rng *rand.Rand) *Game {
	return FromDeck(BuildDeck(pairs, rng))
}

func FromDeck(deck []Card) *Game {
	return &Game{
		Pairs:  len(deck) / 2,
		Cards:  deck,
		First:  -1,
		Status: game.StatusPlaying,
	}
}

func (g *Game) Clone() *Game {
	cp := *g
	cp.Cards = append([]Card(nil), g.Cards...)
	if g.Pending != nil {
		p := *g.Pending
		cp.Pending = &p
	}
	return &cp
}

// Flip turns card i face up. Locked boards, face-up and matched cards are
// ignored. A second flip locks the board and returns the resolution the
// caller must apply with Resolve after its delay.
func (g *Game) Flip(i int) (*Pending, error) {
	if g.Status.Terminal() {
		return nil, game.ErrFinished
	}
	if i < 0 || i >= len(g.Cards) {
		return nil, game.ErrOutOfRange
	}
	c := &g.Cards[i]
	if g.Locked || c.Flipped || c.Matched {
		return nil, nil
	}
	c.Flipped = true
	if g.First < 0 {
		g.First = i
		return nil, nil
	}
	g.Locked = true
	g.Moves++
	p := &Pending{First: g.First, Second: i, Match: g.Cards[g.First].Symbol == c.Symbol}
	p.Delay = MismatchDelay
	if p.Match {
		p.Delay = MatchDelay
	}
	g.Pending = p
	return p, nil
}

// Resolve applies the pending pair: matched cards stay up, others flip back.
func (g *Game) Resolve() {
	p := g.Pending
	if p == nil {
		return
	}
	if p.Match {
		g.Cards[p.First].Matched = true
		g.Cards[p.Second].Matched = true
		g.Matches++
		if g.Matches == g.Pairs {
			g.Status = game.StatusWon
		}
	} else {
		g.Cards[p.First].Flipped = false
		g.Cards[p.Second].Flipped = false
	}
	g.Pending = nil
	g.First = -1
	g.Locked = false
}

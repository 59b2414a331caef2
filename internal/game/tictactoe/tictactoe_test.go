package tictactoe

import (
	"errors"
	"testing"

	"puzzlebox/internal/game"
)

func board(s string) Board {
	var b Board
	for i, ch := range s {
		switch ch {
		case 'X':
			b[i] = Player
		case 'O':
			b[i] = Bot
		}
	}
	return b
}

func TestWinnerLines(t *testing.T) {
	cases := []struct {
		b    string
		want Mark
		line []int
	}{
		{"XXX......", Player, []int{0, 1, 2}},
		{"O..O..O..", Bot, []int{0, 3, 6}},
		{"..X.X.X..", Player, []int{2, 4, 6}},
		{"XOXOXOOXO", Empty, nil},
	}
	for _, tc := range cases {
		w, line := board(tc.b).Winner()
		if w != tc.want || len(line) != len(tc.line) {
			t.Fatalf("%s: winner=%q line=%v", tc.b, w, line)
		}
		for i := range line {
			if line[i] != tc.line[i] {
				t.Fatalf("%s: line=%v", tc.b, line)
			}
		}
	}
}

func TestPlayValidation(t *testing.T) {
	g := New(game.Hard)
	if err := g.Play(9); !errors.Is(err, game.ErrInvalidMove) {
		t.Fatalf("out of range: %v", err)
	}
	if err := g.Play(4); err != nil {
		t.Fatal(err)
	}
	if g.Turn != Bot {
		t.Fatalf("turn should pass to the bot")
	}
	if err := g.Play(0); !errors.Is(err, game.ErrNotYourTurn) {
		t.Fatalf("bot turn: %v", err)
	}
	g.BotMove(game.NewRand(1))
	if err := g.Play(4); !errors.Is(err, game.ErrOccupied) {
		t.Fatalf("occupied: %v", err)
	}
}

func TestSmartMovePrefersWinThenBlock(t *testing.T) {
	rng := game.NewRand(1)
	// O can win on 5; X threatens 2
	if m := SmartMove(board("XX.OO...."), rng); m != 5 {
		t.Fatalf("win: got %d", m)
	}
	if m := SmartMove(board("XX..O...."), rng); m != 2 {
		t.Fatalf("block: got %d", m)
	}
}

func TestBestMoveTakesWin(t *testing.T) {
	if m := BestMove(board("XX.OO.X..")); m != 5 {
		t.Fatalf("got %d", m)
	}
}

// Every possible X line of play against the hard bot ends in an O win or a draw.
func TestHardBotNeverLoses(t *testing.T) {
	var explore func(g *Game)
	games := 0
	explore = func(g *Game) {
		if g.Status.Terminal() {
			games++
			if g.Outcome == OutcomeX {
				t.Fatalf("X won against the hard bot: %v", g.Board)
			}
			return
		}
		for i := range g.Board {
			if g.Board[i] != Empty {
				continue
			}
			next := g.Clone()
			if err := next.Play(i); err != nil {
				t.Fatal(err)
			}
			next.BotMove(nil)
			explore(next)
		}
	}
	explore(New(game.Hard))
	if games == 0 {
		t.Fatalf("no games explored")
	}
}

func TestTallyAndReset(t *testing.T) {
	g := New(game.Medium)
	g.Board = board("XX.OO....")
	g.Play(2)
	if g.Status != game.StatusWon || g.ScoreX != 1 || len(g.Line) != 3 {
		t.Fatalf("status=%s scoreX=%d line=%v", g.Status, g.ScoreX, g.Line)
	}
	if err := g.Play(5); !errors.Is(err, game.ErrFinished) {
		t.Fatalf("play after win: %v", err)
	}

	g.Restart()
	g.Board = board("XOXXOOOX.")
	g.Play(8)
	if g.Status != game.StatusDraw || g.Draws != 1 {
		t.Fatalf("status=%s draws=%d", g.Status, g.Draws)
	}

	g.Restart()
	g.Board = board("XX.OO.X..")
	g.Turn = Bot
	g.BotMove(game.NewRand(2))
	if g.Status != game.StatusLost || g.ScoreO != 1 {
		t.Fatalf("status=%s scoreO=%d", g.Status, g.ScoreO)
	}

	g.ResetScore()
	if g.ScoreX+g.ScoreO+g.Draws != 0 || g.Status != game.StatusPlaying {
		t.Fatalf("reset score failed: %+v", g)
	}
}

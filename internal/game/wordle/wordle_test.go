package wordle

import (
	"errors"
	"testing"

	"puzzlebox/internal/game"
)

func states(s string) []TileState {
	out := make([]TileState, len(s))
	for i, ch := range s {
		switch ch {
		case 'c':
			out[i] = Correct
		case 'p':
			out[i] = Present
		default:
			out[i] = Absent
		}
	}
	return out
}

func TestScore(t *testing.T) {
	cases := []struct {
		guess, solution, want string
	}{
		{"APPLE", "APPLE", "ccccc"},
		{"XYZWQ", "APPLE", "aaaaa"},
		{"PAPER", "APPLE", "ppcpa"},
		{"LLAMA", "HELLO", "ppaaa"},
		{"ALLOT", "HELLO", "apcpa"},
		// exact matches consume their letter first, so the second E is absent
		{"EERIE", "THREE", "pacac"},
	}
	for _, tc := range cases {
		got := Score(tc.guess, tc.solution)
		want := states(tc.want)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("Score(%s, %s) = %v; want %v", tc.guess, tc.solution, got, want)
			}
		}
	}
}

func TestScoreCorrectCountMatchesPositions(t *testing.T) {
	for _, sol := range Words[:40] {
		for _, guess := range Words[:40] {
			if len(guess) != len(sol) {
				continue
			}
			st := Score(guess, sol)
			for i := range st {
				if (st[i] == Correct) != (guess[i] == sol[i]) {
					t.Fatalf("%s vs %s position %d: %s", guess, sol, i, st[i])
				}
			}
		}
	}
}

func TestMergeKeysNeverDowngrades(t *testing.T) {
	keys := map[string]TileState{}
	MergeKeys(keys, "AB", []TileState{Absent, Correct})
	MergeKeys(keys, "BA", []TileState{Present, Present})
	MergeKeys(keys, "BC", []TileState{Absent, Present})
	MergeKeys(keys, "C", []TileState{Absent})
	if keys["B"] != Correct {
		t.Fatalf("B = %s", keys["B"])
	}
	if keys["A"] != Present {
		t.Fatalf("A = %s; present should replace absent", keys["A"])
	}
	if keys["C"] != Present {
		t.Fatalf("C = %s", keys["C"])
	}
}

func TestWordsAndLevels(t *testing.T) {
	for i, w := range Words {
		if len(w) < 5 {
			t.Fatalf("word %d too short: %s", i+1, w)
		}
	}
	if StartLevel(game.Easy) != 1 || StartLevel(game.Medium) != 21 || StartLevel(game.Hard) != 41 {
		t.Fatalf("start levels wrong")
	}
	if SolutionFor(1, game.NewRand(1)) != "APPLE" {
		t.Fatalf("level 1 should be APPLE")
	}
	if w := SolutionFor(150, game.NewRand(1)); len(w) != 10 {
		t.Fatalf("fallback word %s should have 10 letters", w)
	}
	if LengthForLevel(30) != 5 || LengthForLevel(31) != 6 || LengthForLevel(98) != 10 {
		t.Fatalf("length table wrong")
	}
}

func typeWord(t *testing.T, g *Game, w string) {
	t.Helper()
	for _, ch := range w {
		if err := g.Letter(string(ch)); err != nil {
			t.Fatalf("letter %c: %v", ch, err)
		}
	}
}

func TestInputEditing(t *testing.T) {
	g := New(1, game.NewRand(1))
	if err := g.Letter("1"); !errors.Is(err, game.ErrInvalidMove) {
		t.Fatalf("digit accepted: %v", err)
	}
	typeWord(t, g, "apx")
	g.Backspace()
	if g.Col != 2 || g.Board[0][2] != "" || g.Board[0][0] != "A" {
		t.Fatalf("backspace: col=%d row=%v", g.Col, g.Board[0])
	}
	if _, err := g.Enter(); !errors.Is(err, game.ErrIncomplete) {
		t.Fatalf("short row: %v", err)
	}
	g.ClearRow()
	if g.Col != 0 || g.Board[0][0] != "" {
		t.Fatalf("clear row failed")
	}
	typeWord(t, g, "WATER")
	if err := g.Letter("Z"); !errors.Is(err, game.ErrInvalidMove) {
		t.Fatalf("full row accepted a letter: %v", err)
	}
}

func TestWinAndNextLevel(t *testing.T) {
	g := New(1, game.NewRand(1))
	typeWord(t, g, "WATER")
	g.Enter()
	if g.Row != 1 || g.Status != game.StatusPlaying {
		t.Fatalf("row=%d status=%s", g.Row, g.Status)
	}
	typeWord(t, g, "APPLE")
	st, err := g.Enter()
	if err != nil {
		t.Fatal(err)
	}
	if g.Status != game.StatusWon || len(st) != 5 || g.Attempts() != 2 {
		t.Fatalf("status=%s attempts=%d", g.Status, g.Attempts())
	}
	if err := g.Letter("A"); !errors.Is(err, game.ErrFinished) {
		t.Fatalf("input after win: %v", err)
	}
	if !g.NextLevel() || g.Level != 2 || g.Solution != "WATER" || g.Row != 0 || len(g.Keys) != 0 {
		t.Fatalf("next level: %+v", g)
	}
	g.Level = TotalLevels
	if g.NextLevel() {
		t.Fatalf("no level after the last")
	}
}

func TestLoseAfterFiveRowsAndRetry(t *testing.T) {
	g := New(21, game.NewRand(1))
	if g.Cols != 6 {
		t.Fatalf("cols = %d", g.Cols)
	}
	for i := 0; i < Rows; i++ {
		typeWord(t, g, "ZZZZZZ")
		if _, err := g.Enter(); err != nil {
			t.Fatal(err)
		}
	}
	if g.Status != game.StatusLost {
		t.Fatalf("status = %s", g.Status)
	}
	if g.Keys["Z"] != Absent {
		t.Fatalf("Z key = %s", g.Keys["Z"])
	}
	g.Retry()
	if g.Level != 21 || g.Status != game.StatusPlaying || g.Tiles[0][0] != Idle {
		t.Fatalf("retry did not reset: %+v", g)
	}
}

package watersort

import (
	"errors"
	"testing"

	"puzzlebox/internal/game"
)

func TestLevelConfig(t *testing.T) {
	cases := []struct {
		level int
		want  Config
	}{
		{1, Config{Rows: 4, Colors: 2, Bottles: 4}},
		{3, Config{Rows: 4, Colors: 3, Bottles: 5}},
		{21, Config{Rows: 4, Colors: 9, Bottles: 10}},
		{24, Config{Rows: 4, Colors: 9, Bottles: 10}},
		{100, Config{Rows: 4, Colors: 9, Bottles: 10}},
	}
	for _, tc := range cases {
		if got := LevelConfig(tc.level); got != tc.want {
			t.Fatalf("level %d: got %+v want %+v", tc.level, got, tc.want)
		}
	}
}

func TestNewDealsEveryColorRowsTimes(t *testing.T) {
	for level := 1; level <= 30; level += 7 {
		g := New(level, game.NewRand(int64(level)))
		cfg := g.Config
		if len(g.Bottles) != cfg.Bottles {
			t.Fatalf("level %d: %d bottles", level, len(g.Bottles))
		}
		for c, n := range g.ColorCounts() {
			if n != cfg.Rows {
				t.Fatalf("level %d: color %d has %d units", level, c, n)
			}
		}
		if len(g.ColorCounts()) != cfg.Colors {
			t.Fatalf("level %d: %d colors", level, len(g.ColorCounts()))
		}
		for i := cfg.Colors; i < cfg.Bottles; i++ {
			if len(g.Bottles[i]) != 0 {
				t.Fatalf("level %d: spare bottle %d not empty", level, i)
			}
		}
	}
}

func TestCanPourRules(t *testing.T) {
	cfg := Config{Rows: 4, Colors: 2, Bottles: 4}
	g := FromBottles(cfg, []Bottle{{0, 1}, {1, 1, 0, 0}, {}, {0, 1, 1}}, game.NewRand(1))
	cases := []struct {
		from, to int
		want     bool
	}{
		{0, 0, false}, // same bottle
		{2, 0, false}, // empty source
		{0, 1, false}, // full target
		{0, 2, true},  // empty target
		{0, 3, true},  // matching top
		{3, 0, true},
		{1, 3, false}, // top 0 onto 1
	}
	for _, tc := range cases {
		if got := g.CanPour(tc.from, tc.to); got != tc.want {
			t.Fatalf("CanPour(%d,%d) = %v", tc.from, tc.to, got)
		}
	}
}

func TestPourMovesRunCappedBySpace(t *testing.T) {
	cfg := Config{Rows: 4, Colors: 2, Bottles: 3}
	g := FromBottles(cfg, []Bottle{{0, 1, 1, 1}, {0, 0, 1}, {}}, game.NewRand(1))
	n, err := g.Pour(0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("moved %d; want 1", n)
	}
	n, _ = g.Pour(1, 2)
	if n != 2 {
		t.Fatalf("moved %d; want 2", n)
	}
	counts := g.ColorCounts()
	if counts[0] != 3 || counts[1] != 4 {
		t.Fatalf("colors not conserved: %v", counts)
	}
	if _, err := g.Pour(2, 2); !errors.Is(err, game.ErrInvalidMove) {
		t.Fatalf("self pour: %v", err)
	}
}

func TestSelectFlowAndUndo(t *testing.T) {
	cfg := Config{Rows: 4, Colors: 2, Bottles: 4}
	g := FromBottles(cfg, []Bottle{{0, 0, 0, 1}, {1, 1, 1, 0}, {}, {}}, game.NewRand(1))

	g.Select(2) // empty bottle cannot be selected
	if g.Selected != -1 {
		t.Fatalf("selected empty bottle")
	}
	g.Select(0)
	g.Select(0)
	if g.Selected != -1 {
		t.Fatalf("second tap should deselect")
	}

	g.Select(0)
	if _, err := g.Select(1); !errors.Is(err, game.ErrInvalidMove) {
		t.Fatalf("pour 1 onto 0: %v", err)
	}
	if g.Selected != -1 {
		t.Fatalf("rejected pour should clear selection")
	}

	g.Select(0)
	g.Select(2) // 1 -> bottle 2
	g.Select(1)
	g.Select(3) // 0 -> bottle 3
	g.Select(0)
	g.Select(3) // 0,0,0 onto 0
	g.Select(1)
	g.Select(2) // 1,1,1 onto 1
	if g.Status != game.StatusWon {
		t.Fatalf("status = %s, bottles %v", g.Status, g.Bottles)
	}
	if g.Moves != 4 {
		t.Fatalf("moves = %d", g.Moves)
	}

	if !g.Undo() || g.Status != game.StatusPlaying {
		t.Fatalf("undo should reopen the level, status %s", g.Status)
	}
	for g.Undo() {
	}
	want := []Bottle{{0, 0, 0, 1}, {1, 1, 1, 0}, {}, {}}
	for i := range want {
		if len(g.Bottles[i]) != len(want[i]) {
			t.Fatalf("undo chain did not restore bottle %d: %v", i, g.Bottles[i])
		}
	}
}

func TestShuffleKeepsUnits(t *testing.T) {
	g := New(9, game.NewRand(3))
	g.Select(0)
	for i := 1; i < len(g.Bottles); i++ {
		if g.CanPour(0, i) {
			g.Select(i)
			break
		}
	}
	before := g.ColorCounts()
	g.Shuffle()
	after := g.ColorCounts()
	for c, n := range before {
		if after[c] != n {
			t.Fatalf("color %d: %d -> %d", c, n, after[c])
		}
	}
	if g.CanUndo() || g.Selected != -1 {
		t.Fatalf("shuffle must clear history and selection")
	}
}

func TestNextLevelAndReset(t *testing.T) {
	g := New(1, game.NewRand(5))
	g.NextLevel()
	if g.Level != 2 || g.Config != LevelConfig(2) {
		t.Fatalf("level=%d cfg=%+v", g.Level, g.Config)
	}
	g.Reset()
	if g.Level != 2 || g.Moves != 0 {
		t.Fatalf("reset changed level or kept moves")
	}
}

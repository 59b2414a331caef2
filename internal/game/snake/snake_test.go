package snake

import (
	"testing"

	"puzzlebox/internal/game"
)

func TestNewSnake(t *testing.T) {
	g := New(GridFor(game.Easy), game.NewRand(1))
	body := g.Body()
	if len(body) != 2 || body[0] != (game.Point{Row: 5, Col: 5}) || body[1] != (game.Point{Row: 5, Col: 4}) {
		t.Fatalf("body = %v", body)
	}
	if g.Dir != Right || g.Interval != StartInterval {
		t.Fatalf("dir=%s interval=%s", g.Dir, g.Interval)
	}
	if g.occupied(g.Food) {
		t.Fatalf("food on the snake")
	}
	if GridFor(game.Difficulty(-1)) != 15 {
		t.Fatalf("unknown level should use the medium grid")
	}
}

func TestTurnRules(t *testing.T) {
	g := New(10, game.NewRand(1))
	if g.Turn(Left) {
		t.Fatalf("reversal accepted")
	}
	if !g.Turn(Up) {
		t.Fatalf("turn up rejected")
	}
	if g.Turn(Left) {
		t.Fatalf("second turn before a step accepted")
	}
	g.Food = game.Point{Row: 0, Col: 0}
	g.Step()
	if !g.Turn(Left) {
		t.Fatalf("turn after step rejected")
	}
}

func TestStepMovesAndEats(t *testing.T) {
	g := New(10, game.NewRand(2))
	g.Food = game.Point{Row: 5, Col: 6}
	res := g.Step()
	if !res.Ate || g.Score != 1 || len(g.Body()) != 3 {
		t.Fatalf("res=%+v score=%d len=%d", res, g.Score, len(g.Body()))
	}
	if g.Interval != StartInterval-SpeedUp {
		t.Fatalf("interval = %s", g.Interval)
	}
	if g.occupied(g.Food) {
		t.Fatalf("new food on the snake")
	}
	g.Food = game.Point{Row: 0, Col: 0}
	g.Step()
	if len(g.Body()) != 3 || g.Head() != (game.Point{Row: 5, Col: 7}) {
		t.Fatalf("body = %v", g.Body())
	}
}

func TestIntervalFloor(t *testing.T) {
	g := New(20, game.NewRand(3))
	for i := 0; i < 40; i++ {
		g.Interval = max(g.Interval-SpeedUp, MinInterval)
	}
	if g.Interval != MinInterval {
		t.Fatalf("interval = %s", g.Interval)
	}
}

func TestWallCollision(t *testing.T) {
	g := New(10, game.NewRand(4))
	g.Food = game.Point{Row: 0, Col: 0}
	for i := 0; i < 4; i++ {
		if res := g.Step(); res.Died {
			t.Fatalf("died early at step %d", i)
		}
	}
	if res := g.Step(); !res.Died || g.Status != game.StatusLost {
		t.Fatalf("expected wall death, head %v", g.Head())
	}
	if res := g.Step(); res.Died || res.Ate {
		t.Fatalf("step after death should do nothing")
	}
}

func TestSelfCollision(t *testing.T) {
	g := New(10, game.NewRand(5))
	// grow to five cells along row 5
	for i := 0; i < 3; i++ {
		h := g.Head()
		g.Food = game.Point{Row: h.Row, Col: h.Col + 1}
		g.Step()
	}
	g.Food = game.Point{Row: 9, Col: 0}
	g.Turn(Down)
	g.Step()
	g.Turn(Left)
	g.Step()
	g.Turn(Up)
	if res := g.Step(); !res.Died {
		t.Fatalf("expected self collision, body %v", g.Body())
	}
}

func TestCloneCopiesBody(t *testing.T) {
	g := New(10, game.NewRand(6))
	cp := g.Clone()
	cp.Food = game.Point{Row: 0, Col: 0}
	cp.Step()
	if g.Head() == cp.Head() {
		t.Fatalf("clone shares the body")
	}
}

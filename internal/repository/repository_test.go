package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"puzzlebox/internal/db"
	"puzzlebox/internal/domain"
	"puzzlebox/internal/game"
)

type scoreStore interface {
	Create(ctx context.Context, s *domain.Score) error
	Top(ctx context.Context, g game.Type, limit int) ([]*domain.Score, error)
}

type historyStore interface {
	Create(ctx context.Context, gh *domain.GameHistory) error
	GetByPlayer(ctx context.Context, playerID string, limit int) ([]*domain.GameHistory, error)
	GetByPlayerAndGame(ctx context.Context, playerID string, g game.Type, limit int) ([]*domain.GameHistory, error)
	GetPlayerStats(ctx context.Context, playerID string, since time.Time) (*domain.PlayerStats, error)
}

func openSQLite(t *testing.T) *SQLiteScoreRepository {
	t.Helper()
	conn, err := db.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return NewSQLiteScoreRepository(conn)
}

func scoreStores(t *testing.T) map[string]scoreStore {
	return map[string]scoreStore{
		"memory": NewMemoryScoreRepository(),
		"sqlite": openSQLite(t),
	}
}

func historyStores(t *testing.T) map[string]historyStore {
	conn, err := db.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return map[string]historyStore{
		"memory": NewMemoryGameHistoryRepository(),
		"sqlite": NewSQLiteGameHistoryRepository(conn),
	}
}

func testTopScores(t *testing.T, repo scoreStore) {
	ctx := context.Background()
	times := []int{300, 120, 450, 120, 90, 600, 75, 200, 310, 500, 999, 60}
	for i, sec := range times {
		s := &domain.Score{Name: "p", Game: game.TypeSudoku, Time: sec, Errors: i, Level: "Easy"}
		if err := repo.Create(ctx, s); err != nil {
			t.Fatalf("create: %v", err)
		}
		if s.ID == 0 {
			t.Fatal("create did not assign an id")
		}
	}
	repo.Create(ctx, &domain.Score{Name: "m", Game: game.TypeMinesweeper, Time: 1, Level: "Hard"})

	top, err := repo.Top(ctx, game.TypeSudoku, 0)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != DefaultTopLimit {
		t.Fatalf("got %d scores, want %d", len(top), DefaultTopLimit)
	}
	for i := 1; i < len(top); i++ {
		if top[i-1].Time > top[i].Time {
			t.Fatalf("not ascending at %d: %d > %d", i, top[i-1].Time, top[i].Time)
		}
	}
	if top[0].Time != 60 || top[len(top)-1].Time != 500 {
		t.Fatalf("unexpected range %d..%d", top[0].Time, top[len(top)-1].Time)
	}
	// equal times keep insertion order
	for i := 1; i < len(top); i++ {
		if top[i-1].Time == top[i].Time && top[i-1].Errors > top[i].Errors {
			t.Fatal("ties are not ordered by insertion")
		}
	}

	all, _ := repo.Top(ctx, "", 3)
	if len(all) != 3 || all[0].Game != game.TypeMinesweeper {
		t.Fatalf("cross-game top: %+v", all)
	}
}

func TestTopScores(t *testing.T) {
	for name, repo := range scoreStores(t) {
		t.Run(name, func(t *testing.T) { testTopScores(t, repo) })
	}
}

func testHistory(t *testing.T, repo historyStore) {
	ctx := context.Background()
	rows := []domain.GameHistory{
		{PlayerID: "p1", Game: game.TypeSudoku, Result: domain.GameResultWin, DurationSec: 100, Score: 0, Details: map[string]any{"hints": 2}},
		{PlayerID: "p1", Game: game.TypeSnake, Result: domain.GameResultLose, DurationSec: 40, Score: 12},
		{PlayerID: "p1", Game: game.TypeTicTacToe, Result: domain.GameResultDraw, DurationSec: 10},
		{PlayerID: "p2", Game: game.TypeSnake, Result: domain.GameResultWin, DurationSec: 5, Score: 50},
	}
	for i := range rows {
		if err := repo.Create(ctx, &rows[i]); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := repo.GetByPlayer(ctx, "p1", 0)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 3 || got[0].Game != game.TypeTicTacToe {
		t.Fatalf("history should be newest first: %+v", got)
	}
	if hints := fmt.Sprint(got[2].Details["hints"]); hints != "2" {
		t.Fatalf("details lost: %+v", got[2].Details)
	}

	snake, _ := repo.GetByPlayerAndGame(ctx, "p1", game.TypeSnake, 10)
	if len(snake) != 1 || snake[0].Score != 12 {
		t.Fatalf("filtered history: %+v", snake)
	}

	limited, _ := repo.GetByPlayer(ctx, "p1", 2)
	if len(limited) != 2 {
		t.Fatalf("limit ignored: %d rows", len(limited))
	}

	stats, err := repo.GetPlayerStats(ctx, "p1", time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	want := domain.PlayerStats{PlayerID: "p1", TotalGames: 3, Wins: 1, Losses: 1, Draws: 1, BestScore: 12, PlaySec: 150}
	if *stats != want {
		t.Fatalf("stats = %+v, want %+v", *stats, want)
	}

	future, _ := repo.GetPlayerStats(ctx, "p1", time.Now().Add(time.Hour))
	if future.TotalGames != 0 {
		t.Fatalf("since filter ignored: %+v", future)
	}
}

func TestHistory(t *testing.T) {
	for name, repo := range historyStores(t) {
		t.Run(name, func(t *testing.T) { testHistory(t, repo) })
	}
}

// Integration-style test: runs only if DATABASE_URL env is set.
func TestPostgresRepositoriesIntegration(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}
	pool := db.Connect(dsn)
	defer pool.Close()

	ctx := context.Background()
	for _, f := range []string{"../migrations/001_create_scores.sql", "../migrations/002_create_game_history.sql"} {
		b, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := pool.Exec(ctx, string(b)); err != nil {
			t.Fatalf("apply %s: %v", f, err)
		}
	}
	pool.Exec(ctx, `DELETE FROM scores WHERE name = 'it'`)
	pool.Exec(ctx, `DELETE FROM game_history WHERE player_id = 'it-player'`)

	scores := NewScoreRepository(pool)
	for _, sec := range []int{30, 10, 20} {
		if err := scores.Create(ctx, &domain.Score{Name: "it", Game: game.TypeWordle, Time: sec}); err != nil {
			t.Fatalf("create score: %v", err)
		}
	}
	top, err := scores.Top(ctx, game.TypeWordle, 2)
	if err != nil || len(top) != 2 || top[0].Time > top[1].Time {
		t.Fatalf("top: %+v %v", top, err)
	}

	history := NewGameHistoryRepository(pool)
	gh := &domain.GameHistory{PlayerID: "it-player", Game: game.TypeMemory, Result: domain.GameResultWin, DurationSec: 9}
	if err := history.Create(ctx, gh); err != nil {
		t.Fatalf("create history: %v", err)
	}
	stats, err := history.GetPlayerStats(ctx, "it-player", time.Now().Add(-time.Hour))
	if err != nil || stats.Wins != 1 {
		t.Fatalf("stats: %+v %v", stats, err)
	}
}

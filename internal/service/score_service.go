package service

import (
	"context"
	"strings"

	"puzzlebox/internal/domain"
	"puzzlebox/internal/game"
	"puzzlebox/internal/logger"
)

const defaultPlayerName = "Player"

// ScoreService is the scoreboard. Storage failures are logged and swallowed.
type ScoreService struct {
	store ScoreStore
	limit int
}

func NewScoreService(store ScoreStore, limit int) *ScoreService {
	if limit <= 0 {
		limit = 10
	}
	return &ScoreService{store: store, limit: limit}
}

func (s *ScoreService) Limit() int { return s.limit }

// SaveScore appends a Sudoku result, the scoreboard's default game.
func (s *ScoreService) SaveScore(ctx context.Context, name string, seconds int, level string) {
	s.Record(ctx, &domain.Score{Name: name, Game: game.TypeSudoku, Time: seconds, Level: level})
}

// Record appends sc after normalising the name and time.
func (s *ScoreService) Record(ctx context.Context, sc *domain.Score) {
	sc.Name = strings.TrimSpace(sc.Name)
	if sc.Name == "" {
		sc.Name = defaultPlayerName
	}
	if sc.Time < 0 {
		sc.Time = 0
	}
	if err := s.store.Create(ctx, sc); err != nil {
		logger.Warn("score save failed", "game", sc.Game, "name", sc.Name, "error", err)
	}
}

// LoadTopScores returns the fastest entries across every game.
func (s *ScoreService) LoadTopScores(ctx context.Context) []*domain.Score {
	return s.TopScores(ctx, "")
}

// TopScores returns the fastest entries for g, or an empty list when the
// store is unavailable.
func (s *ScoreService) TopScores(ctx context.Context, g game.Type) []*domain.Score {
	top, err := s.store.Top(ctx, g, s.limit)
	if err != nil {
		logger.Warn("score load failed", "game", g, "error", err)
		return []*domain.Score{}
	}
	return top
}

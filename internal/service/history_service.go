package service

import (
	"context"
	"time"

	"puzzlebox/internal/domain"
	"puzzlebox/internal/game"
	"puzzlebox/internal/logger"
)

// HistoryService records finished sessions and serves per-player history.
type HistoryService struct {
	store HistoryStore
}

func NewHistoryService(store HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// Record stores gh; failures are logged and swallowed.
func (s *HistoryService) Record(ctx context.Context, gh *domain.GameHistory) {
	if err := s.store.Create(ctx, gh); err != nil {
		logger.Warn("game history save failed", "player", gh.PlayerID, "game", gh.Game, "error", err)
	}
}

// List returns the player's games, newest first; an empty g lists all games.
func (s *HistoryService) List(ctx context.Context, playerID string, g game.Type, limit int) ([]*domain.GameHistory, error) {
	if g == "" {
		return s.store.GetByPlayer(ctx, playerID, limit)
	}
	return s.store.GetByPlayerAndGame(ctx, playerID, g, limit)
}

// Stats aggregates the player's games over the last period (all time when zero).
func (s *HistoryService) Stats(ctx context.Context, playerID string, period time.Duration) (*domain.PlayerStats, error) {
	since := time.Time{}
	if period > 0 {
		since = time.Now().Add(-period)
	}
	return s.store.GetPlayerStats(ctx, playerID, since)
}

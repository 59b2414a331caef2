package service

import (
	"context"
	"time"

	"puzzlebox/internal/domain"
	"puzzlebox/internal/game"
)

// ScoreStore is implemented by the score repositories.
type ScoreStore interface {
	Create(ctx context.Context, s *domain.Score) error
	Top(ctx context.Context, g game.Type, limit int) ([]*domain.Score, error)
}

// HistoryStore is implemented by the game history repositories.
type HistoryStore interface {
	Create(ctx context.Context, gh *domain.GameHistory) error
	GetByPlayer(ctx context.Context, playerID string, limit int) ([]*domain.GameHistory, error)
	GetByPlayerAndGame(ctx context.Context, playerID string, g game.Type, limit int) ([]*domain.GameHistory, error)
	GetPlayerStats(ctx context.Context, playerID string, since time.Time) (*domain.PlayerStats, error)
}

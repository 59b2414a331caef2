package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"puzzlebox/internal/domain"
	"puzzlebox/internal/game"
)

// MemoryScoreRepository keeps scores in process; used when no database is configured.
type MemoryScoreRepository struct {
	mu     sync.RWMutex
	seq    int64
	scores []domain.Score
}

func NewMemoryScoreRepository() *MemoryScoreRepository {
	return &MemoryScoreRepository{}
}

func (r *MemoryScoreRepository) Create(_ context.Context, s *domain.Score) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	s.ID = r.seq
	s.CreatedAt = time.Now().UTC()
	r.scores = append(r.scores, *s)
	return nil
}

func (r *MemoryScoreRepository) Top(_ context.Context, g game.Type, limit int) ([]*domain.Score, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	r.mu.RLock()
	matched := make([]domain.Score, 0, len(r.scores))
	for _, s := range r.scores {
		if g == "" || s.Game == g {
			matched = append(matched, s)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Time != matched[j].Time {
			return matched[i].Time < matched[j].Time
		}
		return matched[i].ID < matched[j].ID
	})

	out := make([]*domain.Score, 0, min(limit, len(matched)))
	for i := 0; i < len(matched) && i < limit; i++ {
		s := matched[i]
		out = append(out, &s)
	}
	return out, nil
}

type MemoryGameHistoryRepository struct {
	mu   sync.RWMutex
	seq  int64
	rows []domain.GameHistory
}

func NewMemoryGameHistoryRepository() *MemoryGameHistoryRepository {
	return &MemoryGameHistoryRepository{}
}

func (r *MemoryGameHistoryRepository) Create(_ context.Context, gh *domain.GameHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	gh.ID = r.seq
	gh.CreatedAt = time.Now().UTC()
	r.rows = append(r.rows, *gh)
	return nil
}

func (r *MemoryGameHistoryRepository) GetByPlayer(ctx context.Context, playerID string, limit int) ([]*domain.GameHistory, error) {
	return r.GetByPlayerAndGame(ctx, playerID, "", limit)
}

// GetByPlayerAndGame walks newest first; an empty g matches every game.
func (r *MemoryGameHistoryRepository) GetByPlayerAndGame(_ context.Context, playerID string, g game.Type, limit int) ([]*domain.GameHistory, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.GameHistory
	for i := len(r.rows) - 1; i >= 0 && len(out) < limit; i-- {
		gh := r.rows[i]
		if gh.PlayerID != playerID || (g != "" && gh.Game != g) {
			continue
		}
		out = append(out, &gh)
	}
	return out, nil
}

func (r *MemoryGameHistoryRepository) GetPlayerStats(_ context.Context, playerID string, since time.Time) (*domain.PlayerStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &domain.PlayerStats{PlayerID: playerID}
	for _, gh := range r.rows {
		if gh.PlayerID != playerID || gh.CreatedAt.Before(since) {
			continue
		}
		stats.TotalGames++
		switch gh.Result {
		case domain.GameResultWin:
			stats.Wins++
		case domain.GameResultLose:
			stats.Losses++
		case domain.GameResultDraw:
			stats.Draws++
		}
		stats.BestScore = max(stats.BestScore, gh.Score)
		stats.PlaySec += gh.DurationSec
	}
	return stats, nil
}

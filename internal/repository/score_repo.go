package repository

import (
	"context"

	"puzzlebox/internal/domain"
	"puzzlebox/internal/game"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultTopLimit is the scoreboard size.
const DefaultTopLimit = 10

type ScoreRepository struct {
	db *pgxpool.Pool
}

func NewScoreRepository(db *pgxpool.Pool) *ScoreRepository {
	return &ScoreRepository{db: db}
}

func (r *ScoreRepository) Create(ctx context.Context, s *domain.Score) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO scores (player_id, name, game, time_sec, errors, level)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		s.PlayerID, s.Name, s.Game, s.Time, s.Errors, s.Level,
	).Scan(&s.ID, &s.CreatedAt)
}

// Top returns the fastest entries for g; an empty g ranks every game together.
func (r *ScoreRepository) Top(ctx context.Context, g game.Type, limit int) ([]*domain.Score, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, player_id, name, game, time_sec, errors, level, created_at
		 FROM scores
		 WHERE $1 = '' OR game = $1
		 ORDER BY time_sec ASC, id ASC
		 LIMIT $2`,
		string(g), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanScores(rows)
}

func scanScores(rows rowScanner) ([]*domain.Score, error) {
	result := make([]*domain.Score, 0, DefaultTopLimit)
	for rows.Next() {
		var s domain.Score
		if err := rows.Scan(&s.ID, &s.PlayerID, &s.Name, &s.Game, &s.Time, &s.Errors, &s.Level, &s.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &s)
	}
	return result, rows.Err()
}

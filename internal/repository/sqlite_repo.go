package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"puzzlebox/internal/domain"
	"puzzlebox/internal/game"
)

// SQLiteScoreRepository is the file-backed scoreboard used without Postgres.
type SQLiteScoreRepository struct {
	db *sql.DB
}

func NewSQLiteScoreRepository(db *sql.DB) *SQLiteScoreRepository {
	return &SQLiteScoreRepository{db: db}
}

func (r *SQLiteScoreRepository) Create(ctx context.Context, s *domain.Score) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO scores (player_id, name, game, time_sec, errors, level, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.PlayerID, s.Name, string(s.Game), s.Time, s.Errors, s.Level, now,
	)
	if err != nil {
		return err
	}
	if s.ID, err = res.LastInsertId(); err != nil {
		return err
	}
	s.CreatedAt = now
	return nil
}

func (r *SQLiteScoreRepository) Top(ctx context.Context, g game.Type, limit int) ([]*domain.Score, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, player_id, name, game, time_sec, errors, level, created_at
		 FROM scores
		 WHERE ? = '' OR game = ?
		 ORDER BY time_sec ASC, id ASC
		 LIMIT ?`,
		string(g), string(g), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanScores(rows)
}

type SQLiteGameHistoryRepository struct {
	db *sql.DB
}

func NewSQLiteGameHistoryRepository(db *sql.DB) *SQLiteGameHistoryRepository {
	return &SQLiteGameHistoryRepository{db: db}
}

func (r *SQLiteGameHistoryRepository) Create(ctx context.Context, gh *domain.GameHistory) error {
	detailsJSON, err := json.Marshal(gh.Details)
	if err != nil || gh.Details == nil {
		detailsJSON = []byte("{}")
	}

	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO game_history
			(player_id, session_id, game, result, level, moves, duration_sec, score, details, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		gh.PlayerID, gh.SessionID, string(gh.Game), string(gh.Result), gh.Level,
		gh.Moves, gh.DurationSec, gh.Score, string(detailsJSON), now,
	)
	if err != nil {
		return err
	}
	if gh.ID, err = res.LastInsertId(); err != nil {
		return err
	}
	gh.CreatedAt = now
	return nil
}

func (r *SQLiteGameHistoryRepository) GetByPlayer(ctx context.Context, playerID string, limit int) ([]*domain.GameHistory, error) {
	return r.query(ctx, playerID, "", limit)
}

func (r *SQLiteGameHistoryRepository) GetByPlayerAndGame(ctx context.Context, playerID string, g game.Type, limit int) ([]*domain.GameHistory, error) {
	return r.query(ctx, playerID, g, limit)
}

func (r *SQLiteGameHistoryRepository) query(ctx context.Context, playerID string, g game.Type, limit int) ([]*domain.GameHistory, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, player_id, session_id, game, result, level, moves,
				duration_sec, score, details, created_at
		 FROM game_history
		 WHERE player_id = ? AND (? = '' OR game = ?)
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		playerID, string(g), string(g), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHistory(rows)
}

func (r *SQLiteGameHistoryRepository) GetPlayerStats(ctx context.Context, playerID string, since time.Time) (*domain.PlayerStats, error) {
	stats := &domain.PlayerStats{PlayerID: playerID}

	err := r.db.QueryRowContext(ctx,
		`SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN result = 'win' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN result = 'lose' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN result = 'draw' THEN 1 ELSE 0 END), 0),
			COALESCE(MAX(score), 0),
			COALESCE(SUM(duration_sec), 0)
		 FROM game_history
		 WHERE player_id = ? AND created_at >= ?`,
		playerID, since.UTC(),
	).Scan(&stats.TotalGames, &stats.Wins, &stats.Losses, &stats.Draws, &stats.BestScore, &stats.PlaySec)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

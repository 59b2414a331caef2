package repository

import (
	"context"
	"encoding/json"
	"time"

	"puzzlebox/internal/domain"
	"puzzlebox/internal/game"

	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultHistoryLimit = 100

type GameHistoryRepository struct {
	db *pgxpool.Pool
}

func NewGameHistoryRepository(db *pgxpool.Pool) *GameHistoryRepository {
	return &GameHistoryRepository{db: db}
}

// Create stores a finished session
func (r *GameHistoryRepository) Create(ctx context.Context, gh *domain.GameHistory) error {
	detailsJSON, err := json.Marshal(gh.Details)
	if err != nil || gh.Details == nil {
		detailsJSON = []byte("{}")
	}

	return r.db.QueryRow(ctx,
		`INSERT INTO game_history
			(player_id, session_id, game, result, level, moves, duration_sec, score, details)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at`,
		gh.PlayerID,
		gh.SessionID,
		gh.Game,
		gh.Result,
		gh.Level,
		gh.Moves,
		gh.DurationSec,
		gh.Score,
		detailsJSON,
	).Scan(&gh.ID, &gh.CreatedAt)
}

// GetByPlayer returns the player's latest games, newest first
func (r *GameHistoryRepository) GetByPlayer(ctx context.Context, playerID string, limit int) ([]*domain.GameHistory, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, player_id, session_id, game, result, level, moves,
				duration_sec, score, details, created_at
		 FROM game_history
		 WHERE player_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2`,
		playerID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHistory(rows)
}

// GetByPlayerAndGame narrows GetByPlayer to one game
func (r *GameHistoryRepository) GetByPlayerAndGame(ctx context.Context, playerID string, g game.Type, limit int) ([]*domain.GameHistory, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, player_id, session_id, game, result, level, moves,
				duration_sec, score, details, created_at
		 FROM game_history
		 WHERE player_id = $1 AND game = $2
		 ORDER BY created_at DESC, id DESC
		 LIMIT $3`,
		playerID, g, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHistory(rows)
}

// GetPlayerStats aggregates the player's games since the given time
func (r *GameHistoryRepository) GetPlayerStats(ctx context.Context, playerID string, since time.Time) (*domain.PlayerStats, error) {
	stats := &domain.PlayerStats{PlayerID: playerID}

	err := r.db.QueryRow(ctx,
		`SELECT
			COUNT(*) as total_games,
			COUNT(*) FILTER (WHERE result = 'win') as wins,
			COUNT(*) FILTER (WHERE result = 'lose') as losses,
			COUNT(*) FILTER (WHERE result = 'draw') as draws,
			COALESCE(MAX(score), 0) as best_score,
			COALESCE(SUM(duration_sec), 0) as play_sec
		 FROM game_history
		 WHERE player_id = $1 AND created_at >= $2`,
		playerID, since,
	).Scan(&stats.TotalGames, &stats.Wins, &stats.Losses, &stats.Draws, &stats.BestScore, &stats.PlaySec)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanHistory(rows rowScanner) ([]*domain.GameHistory, error) {
	var result []*domain.GameHistory

	for rows.Next() {
		var (
			gh          domain.GameHistory
			detailsJSON []byte
		)

		if err := rows.Scan(
			&gh.ID, &gh.PlayerID, &gh.SessionID, &gh.Game, &gh.Result,
			&gh.Level, &gh.Moves, &gh.DurationSec, &gh.Score,
			&detailsJSON, &gh.CreatedAt,
		); err != nil {
			return nil, err
		}

		if len(detailsJSON) > 0 {
			_ = json.Unmarshal(detailsJSON, &gh.Details)
		}

		result = append(result, &gh)
	}

	return result, rows.Err()
}

package domain

import (
	"time"

	"puzzlebox/internal/game"
)

// GameResult is how a finished session ended for the player.
type GameResult string

const (
	GameResultWin  GameResult = "win"
	GameResultLose GameResult = "lose"
	GameResultDraw GameResult = "draw"
)

// ResultFromStatus maps a terminal engine status to a history result.
func ResultFromStatus(s game.Status) (GameResult, bool) {
	switch s {
	case game.StatusWon:
		return GameResultWin, true
	case game.StatusLost:
		return GameResultLose, true
	case game.StatusDraw:
		return GameResultDraw, true
	}
	return "", false
}

// GameHistory is one finished session.
type GameHistory struct {
	ID          int64          `db:"id" json:"id"`
	PlayerID    string         `db:"player_id" json:"player_id"`
	SessionID   string         `db:"session_id" json:"session_id"`
	Game        game.Type      `db:"game" json:"game"`
	Result      GameResult     `db:"result" json:"result"`
	Level       string         `db:"level" json:"level"`
	Moves       int            `db:"moves" json:"moves"`
	DurationSec int            `db:"duration_sec" json:"duration_sec"`
	Score       int            `db:"score" json:"score"`
	Details     map[string]any `db:"details" json:"details,omitempty"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
}

// PlayerStats aggregates a player's history.
type PlayerStats struct {
	PlayerID   string `json:"player_id"`
	TotalGames int    `json:"total_games"`
	Wins       int    `json:"wins"`
	Losses     int    `json:"losses"`
	Draws      int    `json:"draws"`
	BestScore  int    `json:"best_score"`
	PlaySec    int    `json:"play_seconds"`
}

package domain

import (
	"time"

	"puzzlebox/internal/game"
)

// Score is a scoreboard entry; lower Time ranks higher.
type Score struct {
	ID        int64     `db:"id" json:"id"`
	PlayerID  string    `db:"player_id" json:"player_id,omitempty"`
	Name      string    `db:"name" json:"name"`
	Game      game.Type `db:"game" json:"game"`
	Time      int       `db:"time_sec" json:"time"`
	Errors    int       `db:"errors" json:"errors"`
	Level     string    `db:"level" json:"level"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

package domain

import "time"

// Player is a guest identity issued by /auth/guest.
type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

package middleware

import (
	"net/http"
	"strings"

	"puzzlebox/internal/domain"
	"puzzlebox/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	ctxPlayerID   = "player_id"
	ctxPlayerName = "player_name"
)

// JWT authenticates the request from an "Authorization: Bearer" header or a
// token query parameter and stores the player in the gin context.
func JWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearer(c.Request)
		if token == "" {
			token = c.Query("token")
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token required"})
			return
		}

		id, err := service.ParseJWT(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ctxPlayerID, id.PlayerID)
		c.Set(ctxPlayerName, id.Name)
		c.Next()
	}
}

func bearer(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}

// Player returns the authenticated player set by JWT.
func Player(c *gin.Context) (domain.Player, bool) {
	id := c.GetString(ctxPlayerID)
	if id == "" {
		return domain.Player{}, false
	}
	return domain.Player{ID: id, Name: c.GetString(ctxPlayerName)}, true
}

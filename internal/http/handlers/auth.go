package handlers

import (
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"puzzlebox/internal/domain"
	"puzzlebox/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxNameLen = 32

type GuestRequest struct {
	Name string `json:"name"`
}

// GuestAuth issues a token for a new guest player.
func (h *Handler) GuestAuth(c *gin.Context) {
	var req GuestRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
			return
		}
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "Player"
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		name = string([]rune(name)[:maxNameLen])
	}

	player := domain.Player{ID: uuid.NewString(), Name: name, CreatedAt: time.Now().UTC()}
	token, err := service.GenerateJWT(service.Identity{PlayerID: player.ID, Name: player.Name})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":  token,
		"player": player,
	})
}

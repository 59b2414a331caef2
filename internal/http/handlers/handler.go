package handlers

import (
	"errors"
	"net/http"

	"puzzlebox/internal/domain"
	"puzzlebox/internal/game"
	"puzzlebox/internal/http/middleware"
	"puzzlebox/internal/logger"
	"puzzlebox/internal/service"
	"puzzlebox/internal/session"
	"puzzlebox/internal/settings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Games    *service.GameService
	Settings *settings.Provider
	Scores   *service.ScoreService
	History  *service.HistoryService
}

func NewHandler(games *service.GameService, prefs *settings.Provider, scores *service.ScoreService, history *service.HistoryService) *Handler {
	return &Handler{
		Games:    games,
		Settings: prefs,
		Scores:   scores,
		History:  history,
	}
}

// getPlayer извлекает игрока из контекста Gin
func getPlayer(c *gin.Context) (domain.Player, bool) {
	p, ok := middleware.Player(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	}
	return p, ok
}

// respondError maps domain errors to HTTP statuses.
func respondError(c *gin.Context, err error) {
	var incomplete *game.IncompleteError
	switch {
	case errors.As(err, &incomplete):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": incomplete.Msg, "missing": incomplete.Missing})
	case errors.Is(err, game.ErrInvalidMove):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, session.ErrClosed):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, service.ErrUnknownGame):
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown game"})
	case errors.Is(err, settings.ErrUnknownKey), errors.Is(err, settings.ErrInvalidValue):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

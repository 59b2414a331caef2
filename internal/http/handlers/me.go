package handlers

import (
	"net/http"
	"strconv"
	"time"

	"puzzlebox/internal/game"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Me(c *gin.Context) {
	p, ok := getPlayer(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":       p.ID,
		"name":     p.Name,
		"sessions": h.Games.List(p.ID),
	})
}

// MyHistory lists finished games, newest first. ?game= filters, ?limit= caps.
func (h *Handler) MyHistory(c *gin.Context) {
	p, ok := getPlayer(c)
	if !ok {
		return
	}

	g := game.Type(c.Query("game"))
	if g != "" && !g.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown game"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	rows, err := h.History.List(c.Request.Context(), p.ID, g, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"games": rows})
}

// MyStats aggregates the player's results. ?days= limits the period.
func (h *Handler) MyStats(c *gin.Context) {
	p, ok := getPlayer(c)
	if !ok {
		return
	}

	days, _ := strconv.Atoi(c.Query("days"))
	stats, err := h.History.Stats(c.Request.Context(), p.ID, time.Duration(days)*24*time.Hour)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

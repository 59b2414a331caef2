package handlers

import (
	"net/http"

	"puzzlebox/internal/game"

	"github.com/gin-gonic/gin"
)

// GetScores returns the fastest wins. ?game= narrows to one board.
func (h *Handler) GetScores(c *gin.Context) {
	g := game.Type(c.Query("game"))
	if g != "" && !g.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown game"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"scores": h.Scores.TopScores(c.Request.Context(), g),
		"limit":  h.Scores.Limit(),
	})
}

type ScoreRequest struct {
	Name  string `json:"name"`
	Time  int    `json:"time"`
	Level string `json:"level"`
}

// SaveScore records a Sudoku time reported by the client.
func (h *Handler) SaveScore(c *gin.Context) {
	p, ok := getPlayer(c)
	if !ok {
		return
	}

	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if req.Name == "" {
		req.Name = p.Name
	}

	ctx := c.Request.Context()
	h.Scores.SaveScore(ctx, req.Name, req.Time, req.Level)
	c.JSON(http.StatusCreated, gin.H{"scores": h.Scores.TopScores(ctx, game.TypeSudoku)})
}

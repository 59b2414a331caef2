package handlers

import (
	"errors"
	"net/http"

	"puzzlebox/internal/game"
	"puzzlebox/internal/service"
	"puzzlebox/internal/session"

	"github.com/gin-gonic/gin"
)

type GameInfo struct {
	Type   game.Type `json:"type"`
	Ranked bool      `json:"ranked"`
	Levels []string  `json:"levels,omitempty"`
}

var difficultyLabels = []string{game.Easy.Label(), game.Medium.Label(), game.Hard.Label()}

// ListGames is the menu.
func (h *Handler) ListGames(c *gin.Context) {
	out := make([]GameInfo, 0, len(game.Types))
	for _, t := range game.Types {
		info := GameInfo{Type: t, Ranked: t == game.TypeSudoku || t == game.TypeMinesweeper}
		switch t {
		case game.TypeWaterSort, game.TypeWordle, game.TypeColorBurst:
		default:
			info.Levels = difficultyLabels
		}
		out = append(out, info)
	}
	c.JSON(http.StatusOK, gin.H{"games": out})
}

type StartRequest struct {
	Difficulty *int  `json:"difficulty"`
	Level      int   `json:"level"`
	Seed       int64 `json:"seed"`
}

func (h *Handler) StartSession(c *gin.Context) {
	p, ok := getPlayer(c)
	if !ok {
		return
	}

	var req StartRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
			return
		}
	}

	sess, err := h.Games.Start(c.Request.Context(), p, game.Type(c.Param("game")), service.StartOptions{
		Difficulty: req.Difficulty,
		Level:      req.Level,
		Seed:       req.Seed,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sess.Snapshot())
}

func (h *Handler) ListSessions(c *gin.Context) {
	p, ok := getPlayer(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": h.Games.List(p.ID)})
}

func (h *Handler) GetSession(c *gin.Context) {
	p, ok := getPlayer(c)
	if !ok {
		return
	}
	sess, err := h.Games.Get(p.ID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess.Snapshot())
}

// Act applies one action. A rejected move still returns the state, since
// some games commit part of a rejected action.
func (h *Handler) Act(c *gin.Context) {
	p, ok := getPlayer(c)
	if !ok {
		return
	}

	var a session.Action
	if err := c.ShouldBindJSON(&a); err != nil || a.Type == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "action type required"})
		return
	}

	res, err := h.Games.Act(p.ID, c.Param("id"), a)
	if err == nil {
		c.JSON(http.StatusOK, res)
		return
	}

	var incomplete *game.IncompleteError
	switch {
	case errors.As(err, &incomplete):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": incomplete.Msg, "missing": incomplete.Missing, "state": res})
	case errors.Is(err, game.ErrInvalidMove):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "state": res})
	default:
		respondError(c, err)
	}
}

func (h *Handler) Pause(c *gin.Context) {
	p, ok := getPlayer(c)
	if !ok {
		return
	}
	snap, err := h.Games.Pause(p.ID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *Handler) Resume(c *gin.Context) {
	p, ok := getPlayer(c)
	if !ok {
		return
	}
	snap, err := h.Games.Resume(p.ID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *Handler) CloseSession(c *gin.Context) {
	p, ok := getPlayer(c)
	if !ok {
		return
	}
	if err := h.Games.Close(p.ID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

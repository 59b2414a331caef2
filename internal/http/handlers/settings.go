package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetSettings(c *gin.Context) {
	p, ok := getPlayer(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.Settings.Get(c.Request.Context(), p.ID))
}

// PatchSettings applies a partial update; any bad key rejects the whole body.
func (h *Handler) PatchSettings(c *gin.Context) {
	p, ok := getPlayer(c)
	if !ok {
		return
	}

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	s, err := h.Settings.Patch(c.Request.Context(), p.ID, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *Handler) ToggleTheme(c *gin.Context) {
	p, ok := getPlayer(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.Settings.ToggleTheme(c.Request.Context(), p.ID))
}

func (h *Handler) ResetSettings(c *gin.Context) {
	p, ok := getPlayer(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.Settings.Reset(c.Request.Context(), p.ID))
}

func (h *Handler) DefaultSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.Settings.Defaults())
}

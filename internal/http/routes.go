package http

import (
	"time"

	"puzzlebox/internal/config"
	"puzzlebox/internal/http/handlers"
	"puzzlebox/internal/http/middleware"
	"puzzlebox/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	apiRateLimit   = 300
	authRateLimit  = 10
	rateLimitEvery = time.Minute
)

// RegisterRoutes mounts the health probes, metrics, the event socket and the
// versioned API on r.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler, health *handlers.HealthHandler, hub *ws.Hub, cfg *config.Config) {
	r.Use(middleware.Metrics())

	// Health checks (no rate limiting)
	r.GET("/health", health.Health)
	r.GET("/healthz", health.Liveness)
	r.GET("/readyz", health.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Event stream: state, ticks, haptics and notices
	r.GET("/ws", ws.HandleWS(hub, cfg.AllowedOrigin))

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(apiRateLimit, rateLimitEvery))
	registerAPIRoutes(v1, h, cfg)
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler, cfg *config.Config) {
	// Auth
	api.POST("/auth/guest", middleware.SimpleRateLimit(authRateLimit, rateLimitEvery), h.GuestAuth)

	// Catalogue and scoreboard
	api.GET("/games", h.ListGames)
	api.GET("/scores", h.GetScores)
	api.GET("/settings/defaults", h.DefaultSettings)

	authed := api.Group("")
	authed.Use(middleware.JWT())
	{
		authed.GET("/me", h.Me)
		authed.GET("/me/history", h.MyHistory)
		authed.GET("/me/stats", h.MyStats)

		authed.GET("/settings", h.GetSettings)
		authed.PATCH("/settings", h.PatchSettings)
		authed.DELETE("/settings", h.ResetSettings)
		authed.POST("/settings/theme", h.ToggleTheme)

		authed.POST("/scores", h.SaveScore)
	}

	actionRL := middleware.ActionRateLimit(cfg.ActionRateLimit, time.Duration(cfg.ActionRateWindow)*time.Second)

	sessions := authed.Group("")
	{
		sessions.POST("/games/:game/sessions", actionRL, h.StartSession)
		sessions.GET("/sessions", h.ListSessions)
		sessions.GET("/sessions/:id", h.GetSession)
		sessions.POST("/sessions/:id/actions", actionRL, h.Act)
		sessions.POST("/sessions/:id/pause", h.Pause)
		sessions.POST("/sessions/:id/resume", h.Resume)
		sessions.DELETE("/sessions/:id", h.CloseSession)
	}
}

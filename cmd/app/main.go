package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"puzzlebox/internal/config"
	"puzzlebox/internal/db"
	"puzzlebox/internal/domain"
	httpServer "puzzlebox/internal/http"
	"puzzlebox/internal/http/handlers"
	"puzzlebox/internal/http/middleware"
	"puzzlebox/internal/logger"
	"puzzlebox/internal/repository"
	"puzzlebox/internal/service"
	"puzzlebox/internal/session"
	"puzzlebox/internal/settings"
	"puzzlebox/internal/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat == "json")
	service.InitJWT(cfg.JWTSecret)

	checks := map[string]handlers.Check{}

	// Storage: postgres, then sqlite, then memory
	var (
		scoreStore   service.ScoreStore
		historyStore service.HistoryStore
	)
	switch {
	case cfg.DatabaseURL != "":
		pool := db.Connect(cfg.DatabaseURL)
		defer pool.Close()
		scoreStore = repository.NewScoreRepository(pool)
		historyStore = repository.NewGameHistoryRepository(pool)
		checks["database"] = pool.Ping
		logger.Info("storage: postgres")
	case cfg.SQLitePath != "":
		sqlDB, err := db.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			logger.Fatal("open sqlite", "path", cfg.SQLitePath, "error", err)
		}
		defer sqlDB.Close()
		scoreStore = repository.NewSQLiteScoreRepository(sqlDB)
		historyStore = repository.NewSQLiteGameHistoryRepository(sqlDB)
		checks["database"] = sqlDB.PingContext
		logger.Info("storage: sqlite", "path", cfg.SQLitePath)
	default:
		scoreStore = repository.NewMemoryScoreRepository()
		historyStore = repository.NewMemoryGameHistoryRepository()
		logger.Warn("storage: memory, scores are lost on restart")
	}

	// Settings: redis when configured
	var store settings.Store
	if cfg.RedisAddr != "" {
		rdb, err := settings.DialRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Warn("redis unavailable, settings kept in memory", "addr", cfg.RedisAddr, "error", err)
		} else {
			defer rdb.Close()
			store = settings.NewRedisStore(rdb)
			checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		}
	}
	middleware.InitRedisRateLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	defaults := domain.DefaultSettings()
	if cfg.SettingsDefaultsFile != "" {
		d, err := settings.LoadDefaults(cfg.SettingsDefaultsFile)
		if err != nil {
			logger.Fatal("load settings defaults", "file", cfg.SettingsDefaultsFile, "error", err)
		}
		defaults = d
	}
	prefs := settings.NewProvider(store, defaults)

	scores := service.NewScoreService(scoreStore, cfg.ScoreLimit)
	history := service.NewHistoryService(historyStore)

	// The hub needs the game service for inbound actions and the game
	// service needs the hub for events, so the relay is bound afterwards.
	relay := &hubRelay{}
	games := service.NewGameService(service.GameServiceConfig{
		Settings:     prefs,
		Scores:       scores,
		History:      history,
		Emitter:      relay,
		SessionTTL:   cfg.SessionTTL,
		StrictSudoku: cfg.SudokuStrictCheck,
	})
	hub := ws.NewHub(games)
	hub.StartCleanup()
	relay.EventRelay = service.NewEventRelay(hub)

	unsubscribe := prefs.Subscribe(func(playerID string, s domain.Settings) {
		hub.Publish(playerID, session.Event{Type: session.EventSettings, Payload: s})
	})
	defer unsubscribe()

	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// CORS for production (frontend on different domain)
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" && (cfg.AllowedOrigin == "" || origin == cfg.AllowedOrigin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	httpServer.RegisterRoutes(r,
		handlers.NewHandler(games, prefs, scores, history),
		handlers.NewHealthHandler(cfg.Version, checks),
		hub,
		cfg,
	)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort, "version", cfg.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	games.Shutdown()
	hub.Stop()

	logger.Info("server exited")
}

// hubRelay lets the game service be built before the hub exists.
type hubRelay struct {
	*service.EventRelay
}

func (r *hubRelay) Emit(playerID string, ev session.Event) {
	r.EventRelay.Emit(playerID, ev)
}

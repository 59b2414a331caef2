package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"puzzlebox/internal/logger"

	"github.com/joho/godotenv"
)

const devJWTSecret = "dev_secret_change_me"

type Config struct {
	AppPort       string
	Production    bool
	Version       string
	DatabaseURL   string // postgres; empty -> sqlite or memory
	SQLitePath    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	JWTSecret     string
	AllowedOrigin string

	LogLevel  string
	LogFormat string // "json" | "console"

	// Settings
	SettingsDefaultsFile string

	// Sessions
	SessionTTL        time.Duration
	ScoreLimit        int
	SudokuStrictCheck bool

	// Action limits
	ActionRateLimit  int
	ActionRateWindow int
}

// Load reads the configuration from env (and .env when present)
func Load() *Config {
	_ = godotenv.Load()

	production := strings.EqualFold(os.Getenv("APP_ENV"), "production")

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		if production {
			logger.Fatal("JWT_SECRET is not set")
		}
		jwtSecret = devJWTSecret
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	version := os.Getenv("APP_VERSION")
	if version == "" {
		version = "dev"
	}

	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "" {
		logFormat = "console"
		if production {
			logFormat = "json"
		}
	}

	return &Config{
		AppPort:              port,
		Production:           production,
		Version:              version,
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		SQLitePath:           os.Getenv("SQLITE_PATH"),
		RedisAddr:            os.Getenv("REDIS_ADDR"),
		RedisPassword:        os.Getenv("REDIS_PASSWORD"),
		RedisDB:              envInt("REDIS_DB", 0),
		JWTSecret:            jwtSecret,
		AllowedOrigin:        os.Getenv("ALLOWED_ORIGIN"),
		LogLevel:             envStr("LOG_LEVEL", "info"),
		LogFormat:            logFormat,
		SettingsDefaultsFile: os.Getenv("SETTINGS_DEFAULTS_FILE"),
		SessionTTL:           time.Duration(envInt("SESSION_TTL_MINUTES", 60)) * time.Minute,
		ScoreLimit:           envInt("SCORE_LIMIT", 10),
		SudokuStrictCheck:    os.Getenv("SUDOKU_STRICT_CHECK") == "true",
		ActionRateLimit:      envInt("ACTION_RATE_LIMIT", 600), // actions per window
		ActionRateWindow:     envInt("ACTION_RATE_WINDOW", 60), // seconds
	}
}

func envStr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envInt returns a positive int from env, def otherwise
func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

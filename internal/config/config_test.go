package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "JWT_SECRET", "APP_PORT", "SESSION_TTL_MINUTES", "SCORE_LIMIT", "SUDOKU_STRICT_CHECK", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.AppPort != "8080" {
		t.Fatalf("port = %q; want 8080", cfg.AppPort)
	}
	if cfg.JWTSecret != devJWTSecret {
		t.Fatalf("expected dev jwt secret outside production")
	}
	if cfg.SessionTTL != time.Hour {
		t.Fatalf("session ttl = %v; want 1h", cfg.SessionTTL)
	}
	if cfg.ScoreLimit != 10 {
		t.Fatalf("score limit = %d; want 10", cfg.ScoreLimit)
	}
	if cfg.SudokuStrictCheck {
		t.Fatalf("strict check must default to false")
	}
	if cfg.LogFormat != "console" {
		t.Fatalf("log format = %q; want console", cfg.LogFormat)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("SCORE_LIMIT", "25")
	t.Setenv("SUDOKU_STRICT_CHECK", "true")
	t.Setenv("SESSION_TTL_MINUTES", "5")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := Load()
	if cfg.AppPort != "9000" || cfg.ScoreLimit != 25 || !cfg.SudokuStrictCheck {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.SessionTTL != 5*time.Minute {
		t.Fatalf("session ttl = %v", cfg.SessionTTL)
	}
	if cfg.RedisDB != 0 {
		t.Fatalf("invalid REDIS_DB should fall back to 0, got %d", cfg.RedisDB)
	}
}

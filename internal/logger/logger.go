package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	defaultLogger *zerolog.Logger
)

// Init initializes the global logger
func Init(level string, json bool) {
	InitWithWriter(level, json, os.Stdout)
}

// InitWithWriter is Init with an explicit sink (tests capture output with it).
func InitWithWriter(level string, json bool, w io.Writer) {
	out := w
	if !json {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	l := zerolog.New(out).Level(parseLevel(level)).With().Timestamp().Logger()
	defaultLogger = &l
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Get returns the default logger
func Get() *zerolog.Logger {
	if defaultLogger == nil {
		Init("info", false)
	}
	return defaultLogger
}

// WithContext returns a logger with context values
func WithContext(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
		return l
	}
	return Get()
}

// Info logs at info level
func Info(msg string, args ...any) {
	Get().Info().Fields(args).Msg(msg)
}

// Debug logs at debug level
func Debug(msg string, args ...any) {
	Get().Debug().Fields(args).Msg(msg)
}

// Warn logs at warn level
func Warn(msg string, args ...any) {
	Get().Warn().Fields(args).Msg(msg)
}

// Error logs at error level
func Error(msg string, args ...any) {
	Get().Error().Fields(args).Msg(msg)
}

// Fatal logs at error level and exits
func Fatal(msg string, args ...any) {
	Get().Error().Fields(args).Msg(msg)
	os.Exit(1)
}

// With returns a logger with the given attributes
func With(args ...any) zerolog.Logger {
	return Get().With().Fields(args).Logger()
}

package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the component-scoped structured logger used across the application.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// ParseLevel maps a configuration level name onto a zerolog level.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("unknown log level: %q", name)
	}
}

// LevelFromEnv determines the level from LOG_LEVEL, falling back to DEBUG=1.
// fallback is returned when neither is set.
func LevelFromEnv(fallback string) string {
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		return level
	}
	if os.Getenv("DEBUG") == "1" {
		return "debug"
	}
	return fallback
}

// New builds a logger writing to stderr in the given format ("console" or "json").
func New(level zerolog.Level, format string) *ZerologAdapter {
	if format == "json" {
		return NewZerolog(os.Stderr, level)
	}
	return NewConsoleLogger(level)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(component, message string, fields map[string]interface{})   {}
func (NopLogger) Info(component, message string, fields map[string]interface{})    {}
func (NopLogger) Warning(component, message string, fields map[string]interface{}) {}
func (NopLogger) Error(component string, err error, fields map[string]interface{}) {}

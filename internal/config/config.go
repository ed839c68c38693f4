// Package config reads runtime settings from the environment.
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

// Config captures runtime configuration values for the tracker.
type Config struct {
	HTTPAddress     string
	DBPath          string
	LogLevel        slog.Level
	ShutdownTimeout time.Duration
}

// Load reads environment variables into Config, applying defaults for local use.
func Load() Config {
	return Config{
		HTTPAddress:     getEnv("RAN_HTTP_ADDRESS", ":8222"),
		DBPath:          getEnv("RAN_DB_PATH", "ran.db"),
		LogLevel:        getLevelEnv("RAN_LOG_LEVEL", slog.LevelInfo),
		ShutdownTimeout: getDurationEnv("RAN_SHUTDOWN_TIMEOUT", 5*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getLevelEnv(key string, fallback slog.Level) slog.Level {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(strings.TrimSpace(value))); err == nil {
			return level
		}
	}
	return fallback
}

package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Environment string
	LogLevel    slog.Level

	// RedisURL is the address of the slot store. Empty disables
	// persistence and generation only writes files.
	RedisURL string

	// SlotTTL is how long stored slot records live. Zero means no
	// expiration.
	SlotTTL time.Duration
}

func Load() *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		RedisURL:    getEnv("REDIS_URL", ""),
		SlotTTL:     parseDurationHours(getEnv("SLOT_TTL_HOURS", "0")),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseDurationHours(hours string) time.Duration {
	n, err := strconv.Atoi(hours)
	if err != nil || n < 0 {
		return 0
	}
	return time.Duration(n) * time.Hour
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

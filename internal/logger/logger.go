package logger

import (
	"log/slog"
	"os"

	"github.com/richarm4/sekiro-apworld/internal/config"
)

// Setup configures the global slog logger based on environment
func Setup(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	var handler slog.Handler
	if cfg.Environment == "production" {
		// JSON format for production
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		// Text format for development
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// WithSlot adds slot identity to logger context
func WithSlot(logger *slog.Logger, seed, slot string) *slog.Logger {
	return logger.With("seed", seed, "slot", slot)
}

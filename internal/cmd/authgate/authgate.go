// Package authgate parses configuration and runs the authgate server.
package authgate

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/northreach/authgate/internal/platform/errors"
	"github.com/northreach/authgate/internal/platform/otel"
	server "github.com/northreach/authgate/internal/services/authgate/app"
)

// Config holds authgate command configuration.
type Config struct {
	Port    int
	Workers int
}

// EnvLookup returns the value for a key when present.
type EnvLookup func(string) (string, bool)

// ParseConfig parses flags into a Config, with environment fallbacks.
func ParseConfig(fs *flag.FlagSet, args []string, lookup EnvLookup) (Config, error) {
	cfg := Config{
		Port:    intEnvOrDefault(lookup, "AUTHGATE_PORT", 50051),
		Workers: intEnvOrDefault(lookup, "AUTHGATE_MAX_WORKERS", 10),
	}

	fs.IntVar(&cfg.Port, "port", cfg.Port, "The authgate gRPC server port")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "The request worker pool size")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return apperrors.New(apperrors.CodeConfigInvalid, fmt.Sprintf("port must be between 1 and 65535, got %d", c.Port))
	}
	if c.Workers < 1 {
		return apperrors.New(apperrors.CodeConfigInvalid, fmt.Sprintf("worker count must be positive, got %d", c.Workers))
	}
	return nil
}

// Run starts the authgate server and blocks until the context ends.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := otel.Setup(ctx, "authgate")
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		_ = shutdownTracing(context.Background())
	}()

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	return server.Run(ctx, cfg.Port, cfg.Workers, logger.Sugar())
}

func intEnvOrDefault(lookup EnvLookup, key string, fallback int) int {
	if lookup == nil {
		return fallback
	}
	value, ok := lookup(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

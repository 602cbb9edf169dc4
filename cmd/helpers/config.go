package main

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/helpers/pkg/logger"
)

// Config is read from the environment (and a .env file when present).
// Empty log settings fall back to the preset of the environment.
type Config struct {
	Env             string `env:"HELPERS_ENV" envDefault:"development"`
	LogLevel        string `env:"HELPERS_LOG_LEVEL"`
	LogFormat       string `env:"HELPERS_LOG_FORMAT"`
	AllowReflection bool   `env:"HELPERS_ALLOW_REFLECTION" envDefault:"false"`
}

type fileKey struct{}

func newLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "helpers"),
		logger.WithOutput(w),
		logger.WithContextValue("file", fileKey{}),
	}
	if cfg.LogLevel != "" {
		l, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(l))
	}
	if cfg.LogFormat != "" {
		f, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(f))
	}
	return logger.New(opts...), nil
}

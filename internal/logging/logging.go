package logging

import (
	"io"
	"os"
	"time"

	"github.com/Domenick1991/railbooking/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger.
func Setup(cfg config.LogConfig) {
	log.Logger = New(os.Stdout, cfg)
}

func New(out io.Writer, cfg config.LogConfig) zerolog.Logger {
	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

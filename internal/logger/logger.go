package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"invoicedesk/internal/config"
)

// Setup initializes the global logger from config. Unknown levels fall
// back to info and unknown formats to console; logging setup is never a
// reason to refuse startup.
func Setup(cfg config.LogConfig) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var out = log.Logger
	switch strings.ToLower(cfg.Format) {
	case "json":
		out = zerolog.New(os.Stderr).With().Timestamp().Logger()
	default:
		out = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
	}
	log.Logger = out
}

// WithComponent returns a logger tagged with a component field.
func WithComponent(component string) zerolog.Logger {
	return log.Logger.With().Str("component", component).Logger()
}

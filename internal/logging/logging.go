package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the root logger. Development gets a console writer, production
// plain JSON on stdout.
func New(level, env string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	var logger zerolog.Logger
	if env == "production" {
		logger = zerolog.New(os.Stdout)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}
	return logger.With().Timestamp().Logger().Level(lvl)
}

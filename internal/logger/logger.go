package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds a zerolog logger. An unknown level falls back to info. With
// json false the human console writer is used instead of raw JSON.
func New(level string, json bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var out = os.Stdout
	if json {
		return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	}

	writer := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger()
}

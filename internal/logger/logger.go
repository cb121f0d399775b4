package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Initialize configures the global zerolog logger. format is "console" or "json".
func Initialize(lvl, format string) error {
	level, err := zerolog.ParseLevel(strings.ToLower(lvl))
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var out io.Writer = os.Stdout
	if format != "json" {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return nil
}

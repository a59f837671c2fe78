package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ParseLevel maps debug/info/warn/error to a zerolog level; anything else is info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Init points the global logger at a console writer on w (stderr when nil).
func Init(level string, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	logLevel := ParseLevel(level)

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	zerolog.SetGlobalLevel(logLevel)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05.000"}).
		With().Timestamp().Logger()

	log.Debug().
		Str("level", logLevel.String()).
		Msg("logger initialized")
}

package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/jrsteele09/go-cookie-session/internal/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger. DEV gets a human readable
// console writer on stderr, every other environment gets JSON on stdout.
func Setup(env, level string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		return errors.Wrapf(errors.ErrInvalidConfig, "log level %q", level)
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339Nano
	log.Logger = New(env, output(env))
	return nil
}

// New returns a logger writing to w in the format used for env.
func New(env string, w io.Writer) zerolog.Logger {
	if env == "DEV" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).With().Timestamp().Logger()
}

func output(env string) io.Writer {
	if env == "DEV" {
		return os.Stderr
	}
	return os.Stdout
}

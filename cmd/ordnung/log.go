package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// newLogger builds the default console logger; -log-level adjusts the
// level afterwards.
func newLogger() zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}
	return zerolog.New(out).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()
}

// Package logging arma el zerolog.Logger que comparten la API y la CLI.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config define nivel, formato y destino de los logs.
type Config struct {
	Level  string    // trace, debug, info, warn, error
	Pretty bool      // consola coloreada en lugar de JSON
	Output io.Writer // por defecto os.Stderr
}

// New construye el logger raíz. Los componentes derivan hijos con
// logger.With().Str("component", ...).
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	zerolog.TimeFieldFormat = time.RFC3339
	return zerolog.New(out).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel cae en info ante un valor vacío o desconocido.
func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

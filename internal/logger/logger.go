// Package logger configures the application's logging.
//
// It uses zerolog for structured logging and provides the adapters that
// let the pgx driver log SQL through the same pipeline.
package logger

import (
	"os"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// New builds the application logger.
//
// In the local environment logs are pretty-printed to stderr at debug
// level; everywhere else they are JSON at info level.
func New(env string) *zerolog.Logger {
	var logger zerolog.Logger

	if env == "local" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	} else {
		logger = zerolog.New(os.Stderr).
			Level(zerolog.InfoLevel).
			With().Timestamp().Str("service", "curio").Logger()
	}

	return &logger
}

// NewPgxLogger builds the logger handed to the pgx tracelog adapter.
// SQL statements log as debug, so they only show up in local runs.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Str("component", "pgx").Logger()
}

// GetPgxTraceLogLevel maps the app log level onto a pgx tracelog level.
func GetPgxTraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	case zerolog.ErrorLevel:
		return tracelog.LogLevelError
	default:
		return tracelog.LogLevelNone
	}
}

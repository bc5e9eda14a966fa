// Package logger configures zerolog for the example applications.
//
// The logger writes through an arbitrary io.Writer so applications can
// route it through the shared context's error stream, keeping log output on
// the same role as every other diagnostic write.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

var log = zerolog.Nop()

// Init initializes the logger with the given minimum level, writing to w.
func Init(w io.Writer, level string) {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}

	log = zerolog.New(output).With().Timestamp().Logger().Level(parseLevel(level))
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

// Debug logs a debug message.
func Debug() *zerolog.Event {
	return log.Debug()
}

// Info logs an info message.
func Info() *zerolog.Event {
	return log.Info()
}

// Warn logs a warning message.
func Warn() *zerolog.Event {
	return log.Warn()
}

// Error logs an error message.
func Error() *zerolog.Event {
	return log.Error()
}

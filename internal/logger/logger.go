// Package logger implements the field-based logging API used
// throughout this module, ported from the teacher's pkg/logger field
// constructors but backed by log/slog with github.com/lmittmann/tint
// for colourised console output, following the slog+tint wiring in
// USA-RedDragon/DMRHub's cmd/root.go.
//
// The core packages (bits, codec, fec, burst, pdu, mac) never log;
// only the CLI and ambient services (metrics, store, monitor) hold a
// *Logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

// Config holds logger configuration.
type Config struct {
	Level  string
	Output io.Writer
}

// Logger wraps a *slog.Logger with this module's field-constructor API.
type Logger struct {
	slog *slog.Logger
}

// Field is a structured logging key/value pair.
type Field struct {
	Key   string
	Value any
}

// New creates a Logger from cfg.
func New(cfg Config) *Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}
	handler := tint.NewHandler(output, &tint.Options{Level: parseLevel(cfg.Level)})
	return &Logger{slog: slog.New(handler)}
}

// WithComponent returns a child Logger that tags every record with a
// "component" attribute.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{slog: l.slog.With("component", component)}
}

func toAttrs(fields []Field) []any {
	attrs := make([]any, 0, len(fields)*2)
	for _, f := range fields {
		attrs = append(attrs, f.Key, f.Value)
	}
	return attrs
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, fields ...Field) { l.slog.Debug(msg, toAttrs(fields)...) }

// Info logs at info level.
func (l *Logger) Info(msg string, fields ...Field) { l.slog.Info(msg, toAttrs(fields)...) }

// Warn logs at warn level.
func (l *Logger) Warn(msg string, fields ...Field) { l.slog.Warn(msg, toAttrs(fields)...) }

// Error logs at error level.
func (l *Logger) Error(msg string, fields ...Field) { l.slog.Error(msg, toAttrs(fields)...) }

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Field constructors, matching the teacher's pkg/logger call sites.

// String creates a string field.
func String(key, val string) Field { return Field{Key: key, Value: val} }

// Int creates an int field.
func Int(key string, val int) Field { return Field{Key: key, Value: val} }

// Uint32 creates a uint32 field.
func Uint32(key string, val uint32) Field { return Field{Key: key, Value: val} }

// Uint64 creates a uint64 field.
func Uint64(key string, val uint64) Field { return Field{Key: key, Value: val} }

// Bool creates a bool field.
func Bool(key string, val bool) Field { return Field{Key: key, Value: val} }

// Error creates an error field. A nil err logs as "nil" rather than
// being omitted, matching the teacher's own Error field constructor.
func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: "nil"}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Any creates a field with an arbitrary value.
func Any(key string, val any) Field { return Field{Key: key, Value: val} }

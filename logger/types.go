package logger

import (
	"context"
	"io"
	"os"
	"time"
)

// Logger is our contract for the logger.
//
// Fields are slog key/value pairs or slog.Attr values.
type Logger interface {
	Error(msg string, fields ...any)
	ErrorWithContext(ctx context.Context, msg string, fields ...any)

	Warn(msg string, fields ...any)
	WarnWithContext(ctx context.Context, msg string, fields ...any)

	Info(msg string, fields ...any)
	InfoWithContext(ctx context.Context, msg string, fields ...any)

	Debug(msg string, fields ...any)
	DebugWithContext(ctx context.Context, msg string, fields ...any)

	// Closer is the interface that wraps the basic Close method.
	io.Closer
}

const (
	// ERROR_LEVEL logs only errors
	ERROR_LEVEL = iota
	// WARN_LEVEL logs warnings and errors
	WARN_LEVEL
	// INFO_LEVEL logs info, warnings and errors
	INFO_LEVEL
	// DEBUG_LEVEL logs everything
	DEBUG_LEVEL
)

// ContextFields extracts key/value pairs from a request context. They are
// appended to every record written through a ...WithContext method.
type ContextFields func(ctx context.Context) []any

// Configuration - options for logger
type Configuration struct {
	Writer        io.Writer
	TimeFormat    string
	Level         int
	ContextFields []ContextFields
}

// Default returns the configuration used when nothing is set.
func Default() Configuration {
	return Configuration{
		Writer:     os.Stdout,
		TimeFormat: time.RFC3339Nano,
		Level:      INFO_LEVEL,
	}
}

// Validate checks the level and fills in missing writer and time format.
func (c *Configuration) Validate() error {
	if c.Level < ERROR_LEVEL || c.Level > DEBUG_LEVEL {
		return ErrInvalidLogLevel
	}

	if c.Writer == nil {
		c.Writer = os.Stdout
	}

	if c.TimeFormat == "" {
		c.TimeFormat = time.RFC3339Nano
	}

	return nil
}

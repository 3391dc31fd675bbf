package logger

import (
	"context"
	"log/slog"
)

// The plain variants carry no request or trace fields.

func (log *SlogLogger) Error(msg string, fields ...any) {
	log.write(context.Background(), slog.LevelError, msg, fields)
}

func (log *SlogLogger) Warn(msg string, fields ...any) {
	log.write(context.Background(), slog.LevelWarn, msg, fields)
}

func (log *SlogLogger) Info(msg string, fields ...any) {
	log.write(context.Background(), slog.LevelInfo, msg, fields)
}

func (log *SlogLogger) Debug(msg string, fields ...any) {
	log.write(context.Background(), slog.LevelDebug, msg, fields)
}

// The context variants add the configured context fields and the trace id.

func (log *SlogLogger) ErrorWithContext(ctx context.Context, msg string, fields ...any) {
	log.writeWithContext(ctx, slog.LevelError, msg, fields)
}

func (log *SlogLogger) WarnWithContext(ctx context.Context, msg string, fields ...any) {
	log.writeWithContext(ctx, slog.LevelWarn, msg, fields)
}

func (log *SlogLogger) InfoWithContext(ctx context.Context, msg string, fields ...any) {
	log.writeWithContext(ctx, slog.LevelInfo, msg, fields)
}

func (log *SlogLogger) DebugWithContext(ctx context.Context, msg string, fields ...any) {
	log.writeWithContext(ctx, slog.LevelDebug, msg, fields)
}

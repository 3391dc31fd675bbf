package logger

import (
	"context"
	"log/slog"
	"runtime"
	"slices"
	"time"

	"github.com/shortlink-org/shop/logger/tracer"
)

type SlogLogger struct {
	logger        *slog.Logger
	contextFields []ContextFields
}

var _ Logger = (*SlogLogger)(nil)

func New(cfg Configuration) (*SlogLogger, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	timeFormat := cfg.TimeFormat
	handler := slog.NewJSONHandler(cfg.Writer, &slog.HandlerOptions{
		Level:     levels[cfg.Level],
		AddSource: true,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().Format(timeFormat))
			}

			return a
		},
	})

	return &SlogLogger{
		logger:        slog.New(handler),
		contextFields: cfg.ContextFields,
	}, nil
}

// Close is a no-op: the JSON handler writes through without buffering.
func (log *SlogLogger) Close() error {
	return nil
}

var levels = map[int]slog.Level{
	ERROR_LEVEL: slog.LevelError,
	WARN_LEVEL:  slog.LevelWarn,
	INFO_LEVEL:  slog.LevelInfo,
	DEBUG_LEVEL: slog.LevelDebug,
}

// write and writeWithContext must be called directly from the exported
// level methods: the record source skips exactly that many frames.
func (log *SlogLogger) write(ctx context.Context, level slog.Level, msg string, fields []any) {
	if !log.logger.Enabled(ctx, level) {
		return
	}

	log.handle(ctx, callerPC(), level, msg, fields)
}

func (log *SlogLogger) writeWithContext(ctx context.Context, level slog.Level, msg string, fields []any) {
	if ctx == nil {
		ctx = context.Background()
	}

	if !log.logger.Enabled(ctx, level) {
		return
	}

	fields = slices.Clip(fields)
	for _, extract := range log.contextFields {
		fields = append(fields, extract(ctx)...)
	}

	fields = tracer.FieldsFromContext(ctx, level.String(), msg, fields...)
	log.handle(ctx, callerPC(), level, msg, fields)
}

func (log *SlogLogger) handle(ctx context.Context, pc uintptr, level slog.Level, msg string, fields []any) {
	record := slog.NewRecord(time.Now(), level, msg, pc)
	record.Add(fields...)

	_ = log.logger.Handler().Handle(ctx, record) //nolint:errcheck // nowhere to report
}

// callerPC returns the program counter of the code that called a level method.
func callerPC() uintptr {
	var pcs [1]uintptr

	// runtime.Callers, callerPC, write*, the level method
	runtime.Callers(4, pcs[:]) //nolint:mnd // frame count above

	return pcs[0]
}

// Since returns the elapsed time since start as a log field.
func Since(start time.Time) slog.Attr {
	return slog.Int64("took_ms", time.Since(start).Milliseconds())
}

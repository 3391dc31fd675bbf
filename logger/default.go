package logger

import (
	"context"
	"time"

	"github.com/shortlink-org/shop/config"
)

// NewDefault builds the process logger from LOG_LEVEL and LOG_TIME_FORMAT,
// writing JSON to stdout. The returned func closes it.
func NewDefault(_ context.Context, cfg *config.Config, contextFields ...ContextFields) (*SlogLogger, func(), error) {
	cfg.SetDefault("LOG_LEVEL", INFO_LEVEL)
	cfg.SetDefault("LOG_TIME_FORMAT", time.RFC3339Nano)

	log, err := New(Configuration{
		Level:         cfg.GetInt("LOG_LEVEL"),
		TimeFormat:    cfg.GetString("LOG_TIME_FORMAT"),
		ContextFields: contextFields,
	})
	if err != nil {
		return nil, nil, err
	}

	return log, func() { _ = log.Close() }, nil //nolint:errcheck // Close never fails
}

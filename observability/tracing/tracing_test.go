package tracing_test

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/shortlink-org/shop/config"
	"github.com/shortlink-org/shop/logger"
	"github.com/shortlink-org/shop/observability/tracing"
)

func newLogger(t *testing.T) *logger.SlogLogger {
	t.Helper()

	log, err := logger.New(logger.Configuration{Level: logger.ERROR_LEVEL, Writer: io.Discard})
	require.NoError(t, err)

	return log
}

func TestNewWithoutURIIsNoop(t *testing.T) {
	cfg := config.NewFromMap(map[string]any{"TRACER_URI": "", "SERVICE_NAME": "gateway"})

	tp, cleanup, err := tracing.New(context.Background(), newLogger(t), cfg)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	require.IsType(t, noop.TracerProvider{}, tp)
	require.Contains(t, otel.GetTextMapPropagator().Fields(), "traceparent")
}

func TestNewWithURI(t *testing.T) {
	cfg := config.NewFromMap(map[string]any{"TRACER_URI": "localhost:4317", "SERVICE_NAME": "orders"})

	tp, cleanup, err := tracing.New(context.Background(), newLogger(t), cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		cleanup()
		otel.SetTracerProvider(noop.NewTracerProvider())
	})

	require.IsType(t, &sdktrace.TracerProvider{}, tp)
}

/*
Tracing wrapping
*/
package tracing

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	traceProvider "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/shortlink-org/shop/config"
	"github.com/shortlink-org/shop/logger"
)

// Config - tracing options
type Config struct {
	ServiceName    string
	ServiceVersion string
	URI            string
}

// New installs the global TracerProvider and W3C propagators. With an empty
// TRACER_URI a no-op provider is installed and nothing is exported.
//
//nolint:ireturn // noop or sdk provider
func New(ctx context.Context, log logger.Logger, cfg *config.Config) (traceProvider.TracerProvider, func(), error) {
	cfg.SetDefault("TRACER_URI", "")
	cfg.SetDefault("SERVICE_VERSION", "dev")

	// Register the W3C trace context and baggage propagators so data is propagated across services/processes
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)

	cnf := Config{
		ServiceName:    cfg.GetString("SERVICE_NAME"),
		ServiceVersion: cfg.GetString("SERVICE_VERSION"),
		URI:            cfg.GetString("TRACER_URI"),
	}

	if cnf.URI == "" {
		tp := noop.NewTracerProvider()
		otel.SetTracerProvider(tp)

		return tp, func() {}, nil
	}

	tp, err := newTraceProvider(ctx, cnf, cfg)
	if err != nil {
		return nil, nil, err
	}

	otel.SetTracerProvider(tp)

	log.Info("Tracing enable",
		slog.String("uri", cnf.URI),
	)

	cleanup := func() {
		// the parent context is already canceled on shutdown
		errShutdown := tp.Shutdown(context.WithoutCancel(ctx))
		if errShutdown != nil {
			log.Error("Tracing disable",
				slog.String("uri", cnf.URI),
				slog.Any("err", errShutdown),
			)
		}
	}

	return tp, cleanup, nil
}

func newTraceProvider(ctx context.Context, cnf Config, cfg *config.Config) (*trace.TracerProvider, error) {
	cfg.SetDefault("TRACING_INITIAL_INTERVAL", "2s")
	cfg.SetDefault("TRACING_MAX_INTERVAL", "30s")
	cfg.SetDefault("TRACING_MAX_ELAPSED_TIME", "1m")

	initialInterval := cfg.GetDuration("TRACING_INITIAL_INTERVAL")

	res, err := resource.Merge(resource.Default(), resource.NewSchemaless(
		semconv.ServiceName(cnf.ServiceName),
		semconv.ServiceVersion(cnf.ServiceVersion),
	))
	if err != nil {
		return nil, err
	}

	traceExporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(cnf.URI),
		otlptracegrpc.WithRetry(otlptracegrpc.RetryConfig{
			Enabled:         true,
			InitialInterval: initialInterval,
			MaxInterval:     cfg.GetDuration("TRACING_MAX_INTERVAL"),
			MaxElapsedTime:  cfg.GetDuration("TRACING_MAX_ELAPSED_TIME"),
		}),
	)
	if err != nil {
		return nil, err
	}

	return trace.NewTracerProvider(
		trace.WithBatcher(traceExporter, trace.WithBatchTimeout(initialInterval)),
		trace.WithResource(res),
		trace.WithSampler(trace.ParentBased(trace.AlwaysSample())),
	), nil
}

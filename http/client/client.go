package http_client

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// New builds an outbound client. Requests pass, outermost first, through
// request id forwarding, metrics and the otelhttp transport, which opens a
// client span and injects the trace headers.
//
// The client has no timeout and never retries.
func New(opts ...Option) (*http.Client, error) {
	o := options{
		name: defaultClientName,
		base: http.DefaultTransport,
	}

	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	traced := otelhttp.NewTransport(o.base,
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return o.name + " " + r.Method + " " + r.URL.Host
		}),
	)

	transport := Chain(
		RequestIDMiddleware(),
		MetricsMiddleware(MetricsConfig{Metrics: o.metrics, Client: o.name}),
	)(traced)

	return &http.Client{Transport: transport}, nil
}

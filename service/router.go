package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	logger_middleware "github.com/shortlink-org/shop/http/middleware/logger"
	metrics_middleware "github.com/shortlink-org/shop/http/middleware/metrics"
	request_id_middleware "github.com/shortlink-org/shop/http/middleware/request_id"
	span_middleware "github.com/shortlink-org/shop/http/middleware/span"
)

// NewRouter wraps the service routes with the shared middleware stack and the
// /metrics, /live and /ready endpoints. The otelhttp handler is outermost so
// every middleware sees the server span.
func NewRouter(name string, deps Deps, mount func(r chi.Router)) (http.Handler, error) {
	r := chi.NewRouter()

	metricsMiddleware, err := metrics_middleware.NewMetrics(deps.Monitoring.Prometheus)
	if err != nil {
		return nil, err
	}

	r.Use(request_id_middleware.RequestID())
	r.Use(span_middleware.Span())
	r.Use(logger_middleware.Logger(deps.Log))
	r.Use(metricsMiddleware)

	deps.Monitoring.Mount(r)
	mount(r)

	return otelhttp.NewHandler(r, name,
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	), nil
}

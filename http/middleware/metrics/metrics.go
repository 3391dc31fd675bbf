package metrics_middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
)

// unmatched labels requests no route claimed, keeping path cardinality bounded.
const unmatched = "unmatched"

var labels = []string{"status", "method", "path"}

type recorder struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewMetrics registers http_requests_total and http_request_duration_seconds
// on reg and returns the middleware feeding them.
func NewMetrics(reg prometheus.Registerer) (func(next http.Handler) http.Handler, error) {
	rec := recorder{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Inbound HTTP requests by status, method and route pattern.",
		}, labels),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Inbound HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, labels),
	}

	for _, c := range []prometheus.Collector{rec.requests, rec.latency} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return rec.middleware, nil
}

func (rec recorder) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		values := []string{strconv.Itoa(status), r.Method, routePattern(r)}
		rec.requests.WithLabelValues(values...).Inc()
		rec.observe(r, rec.latency.WithLabelValues(values...), time.Since(start).Seconds())
	})
}

// observe attaches the trace id as an exemplar when the request was sampled.
func (rec recorder) observe(r *http.Request, observer prometheus.Observer, seconds float64) {
	spanCtx := trace.SpanContextFromContext(r.Context())
	exemplar, ok := observer.(prometheus.ExemplarObserver)

	if ok && spanCtx.HasTraceID() && spanCtx.IsSampled() {
		exemplar.ObserveWithExemplar(seconds, prometheus.Labels{"trace_id": spanCtx.TraceID().String()})

		return
	}

	observer.Observe(seconds)
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatched
	}

	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}

	return unmatched
}

package span_middleware

import (
	"net/http"

	"go.opentelemetry.io/otel/trace"
)

// TraceIDHeader is the response header carrying the trace id.
const TraceIDHeader = "X-Trace-ID"

// Span exposes the trace id of the server span on the response so a client
// can correlate a failed call with the gateway logs. It must run inside the
// otelhttp handler.
func Span() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			spanCtx := trace.SpanContextFromContext(r.Context())
			if spanCtx.HasTraceID() && w.Header().Get(TraceIDHeader) == "" {
				w.Header().Set(TraceIDHeader, spanCtx.TraceID().String())
			}

			next.ServeHTTP(w, r)
		})
	}
}

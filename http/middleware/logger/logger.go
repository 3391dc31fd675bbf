package logger_middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/trace"

	"github.com/shortlink-org/shop/logger"
)

type chilogger struct {
	log logger.Logger
}

// Logger writes one "request completed" line per request and turns a handler
// panic into a logged 500.
func Logger(log logger.Logger) func(next http.Handler) http.Handler {
	return chilogger{log: log}.middleware
}

func (c chilogger) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Wrap the writer to capture status and bytes written
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			if rec := recover(); rec != nil {
				c.log.ErrorWithContext(
					r.Context(),
					"panic recovered",
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if ww.Status() == 0 {
					http.Error(ww, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}

				return
			}

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			fields := []any{
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				logger.Since(start),
				slog.String("remote", r.RemoteAddr),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("query", r.URL.RawQuery),
				slog.String("user_agent", r.UserAgent()),
			}

			spanCtx := trace.SpanContextFromContext(r.Context())
			if spanCtx.HasSpanID() {
				fields = append(fields, slog.String("span_id", spanCtx.SpanID().String()))
			}

			// Log level depending on status
			switch {
			case status >= http.StatusInternalServerError:
				c.log.ErrorWithContext(r.Context(), "request completed", fields...)
			case status >= http.StatusBadRequest:
				c.log.WarnWithContext(r.Context(), "request completed", fields...)
			default:
				c.log.InfoWithContext(r.Context(), "request completed", fields...)
			}
		}()

		next.ServeHTTP(ww, r)
	})
}

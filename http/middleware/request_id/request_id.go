package request_id_middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Header carries the request id between clients, the gateway and backends.
const Header = "X-Request-ID"

type ctxKey struct{}

// RequestID accepts an inbound X-Request-ID or generates one, stores it in
// the request context and echoes it on the response.
func RequestID() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(Header)
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set(Header, id)
			next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
		})
	}
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the request id or an empty string.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)

	return id
}

// LogFields adds request_id to context-aware log records.
func LogFields(ctx context.Context) []any {
	id := FromContext(ctx)
	if id == "" {
		return nil
	}

	return []any{"request_id", id}
}

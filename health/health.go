// Package health serves the liveness document every process exposes on GET /health.
package health

import (
	"fmt"
	"net/http"

	"github.com/shortlink-org/shop/http/render"
)

// CacheControl disables caching of health answers by clients and proxies.
const CacheControl = "no-store, no-cache, must-revalidate, private"

// Status is computed on every request and never stored.
type Status struct {
	Status string `json:"status"`
}

// NewStatus renders "<env> - <label> Service is healthy".
func NewStatus(env, label string) Status {
	return Status{Status: fmt.Sprintf("%s - %s Service is healthy", env, label)}
}

// Handler answers GET /health for the service called label.
func Handler(env, label string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Cache-Control", CacheControl)
		_ = render.JSON(w, http.StatusOK, NewStatus(env, label)) //nolint:errcheck // client went away
	}
}

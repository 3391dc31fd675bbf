// Package http_server provides HTTP server configuration and initialization.
package http_server

import (
	"time"
)

// Config contains base configuration for the HTTP API server.
type Config struct {
	Port int
	// Timeout bounds a whole request. Zero leaves requests unbounded.
	Timeout time.Duration
}

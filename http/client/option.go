package http_client

import (
	"net/http"
	"strings"
)

const defaultClientName = "http"

type options struct {
	name    string
	metrics *Metrics
	base    http.RoundTripper
}

// Option configures a client built by New.
type Option func(*options) error

// WithClientName labels metrics and names outbound spans. Blank names fall
// back to "http".
func WithClientName(name string) Option {
	return func(o *options) error {
		if name = strings.TrimSpace(name); name != "" {
			o.name = name
		}

		return nil
	}
}

// WithMetrics records every outbound call into m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) error {
		if m == nil {
			return ErrNilMetrics
		}

		o.metrics = m

		return nil
	}
}

// WithBaseTransport replaces http.DefaultTransport as the innermost transport.
func WithBaseTransport(rt http.RoundTripper) Option {
	return func(o *options) error {
		if rt != nil {
			o.base = rt
		}

		return nil
	}
}

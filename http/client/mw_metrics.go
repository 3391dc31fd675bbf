package http_client

import (
	"net/http"
	"strconv"
	"time"
)

type MetricsConfig struct {
	Metrics *Metrics
	Client  string
}

func MetricsMiddleware(cfg MetricsConfig) Middleware {
	if cfg.Metrics == nil {
		return func(next http.RoundTripper) http.RoundTripper { return next }
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(req)

			cfg.Metrics.DurationSeconds.
				WithLabelValues(cfg.Client, req.URL.Host, req.Method).
				Observe(time.Since(start).Seconds())

			code := CodeError
			if err == nil {
				code = strconv.Itoa(resp.StatusCode)
			}

			cfg.Metrics.RequestsTotal.
				WithLabelValues(cfg.Client, req.URL.Host, req.Method, code).
				Inc()

			return resp, err
		})
	}
}

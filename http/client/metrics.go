package http_client

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	LabelClient = "client"
	LabelHost   = "host"
	LabelMethod = "method"
	LabelCode   = "code"

	// CodeError is the code label value for calls that produced no response.
	CodeError = "error"
)

type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	DurationSeconds *prometheus.HistogramVec
}

func NewMetrics(namespace, subsystem string) *Metrics {
	return &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{ //nolint:exhaustruct // Prometheus options have many optional fields
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "upstream_requests_total",
				Help:      "Total number of outbound requests by response code.",
			},
			[]string{LabelClient, LabelHost, LabelMethod, LabelCode},
		),
		DurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{ //nolint:exhaustruct // Prometheus options have many optional fields
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "upstream_duration_seconds",
				Help:      "Outbound request latency until response headers.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{LabelClient, LabelHost, LabelMethod},
		),
	}
}

func (m *Metrics) Register(reg prometheus.Registerer) error {
	err := reg.Register(m.RequestsTotal)
	if err != nil {
		return fmt.Errorf("register upstream_requests_total: %w", err)
	}

	err = reg.Register(m.DurationSeconds)
	if err != nil {
		return fmt.Errorf("register upstream_duration_seconds: %w", err)
	}

	return nil
}

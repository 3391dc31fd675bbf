package metrics

import (
	"net/http"

	"github.com/heptiolabs/healthcheck"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// goroutineThreshold fails liveness when a process leaks goroutines, e.g.
// requests piling up behind a hung backend.
const goroutineThreshold = 10_000

type Monitoring struct {
	Prometheus *prometheus.Registry
	Health     healthcheck.Handler
}

// New creates a private Prometheus registry with Go runtime, process and build
// collectors and a health handler reporting into it under namespace.
func New(namespace string) (*Monitoring, error) {
	monitoring := &Monitoring{
		Prometheus: prometheus.NewRegistry(),
	}

	for _, collector := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewBuildInfoCollector(),
	} {
		err := monitoring.Prometheus.Register(collector)
		if err != nil {
			return nil, err
		}
	}

	// The health check related metrics will be prefixed with the provided namespace
	monitoring.Health = healthcheck.NewMetricsHandler(monitoring.Prometheus, namespace)
	monitoring.Health.AddLivenessCheck("goroutine-threshold", healthcheck.GoroutineCountCheck(goroutineThreshold))

	return monitoring, nil
}

// Mux is satisfied by chi.Router and *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// Mount exposes /metrics, /live and /ready on mux.
func (m *Monitoring) Mount(mux Mux) {
	mux.Handle("/metrics", promhttp.HandlerFor(
		m.Prometheus,
		promhttp.HandlerOpts{
			// Opt into OpenMetrics to support exemplars.
			EnableOpenMetrics: true,
			ErrorHandling:     promhttp.ContinueOnError,
		},
	))

	mux.Handle("/live", http.HandlerFunc(m.Health.LiveEndpoint))
	mux.Handle("/ready", http.HandlerFunc(m.Health.ReadyEndpoint))
}

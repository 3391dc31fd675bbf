package http_client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	request_id_middleware "github.com/shortlink-org/shop/http/middleware/request_id"
)

func okResponse(req *http.Request, status int) *http.Response {
	resp := new(http.Response)
	resp.Body = io.NopCloser(strings.NewReader("[]"))
	resp.Header = make(http.Header)
	resp.Request = req
	resp.StatusCode = status

	return resp
}

func TestClientRecordsUpstreamMetrics(t *testing.T) {
	const delta = 1e-9

	metrics := NewMetrics("test", "client")
	reg := prometheus.NewRegistry()
	require.NoError(t, metrics.Register(reg))

	baseTransport := RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if strings.HasSuffix(req.URL.Path, "/down") {
			return nil, errors.New("connection refused")
		}

		return okResponse(req, http.StatusOK), nil
	})

	client, err := New(
		WithClientName("users"),
		WithMetrics(metrics),
		WithBaseTransport(baseTransport),
	)
	require.NoError(t, err)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://user-service:3000/users", http.NoBody)
	require.NoError(t, err)

	resp, err := client.Transport.RoundTrip(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	req, err = http.NewRequestWithContext(context.Background(), http.MethodGet, "http://user-service:3000/down", http.NoBody)
	require.NoError(t, err)

	_, err = client.Transport.RoundTrip(req) //nolint:bodyclose // no response on error
	require.Error(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	ok := counterValue(families, "test_client_upstream_requests_total", map[string]string{
		LabelClient: "users",
		LabelHost:   "user-service:3000",
		LabelMethod: http.MethodGet,
		LabelCode:   "200",
	})
	require.InDelta(t, 1, ok, delta)

	failed := counterValue(families, "test_client_upstream_requests_total", map[string]string{
		LabelClient: "users",
		LabelHost:   "user-service:3000",
		LabelMethod: http.MethodGet,
		LabelCode:   CodeError,
	})
	require.InDelta(t, 1, failed, delta)
}

func TestClientForwardsRequestID(t *testing.T) {
	var seen string

	baseTransport := RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		seen = req.Header.Get(request_id_middleware.Header)

		return okResponse(req, http.StatusOK), nil
	})

	client, err := New(WithBaseTransport(baseTransport))
	require.NoError(t, err)

	ctx := request_id_middleware.WithRequestID(context.Background(), "req-42")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "http://order-service:3002/orders", http.NoBody)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	require.Equal(t, "req-42", seen)
	require.Empty(t, req.Header.Get(request_id_middleware.Header), "caller request must not be mutated")
}

func TestWithMetricsRejectsNil(t *testing.T) {
	_, err := New(WithMetrics(nil))
	require.ErrorIs(t, err, ErrNilMetrics)
}

func TestBlankClientNameFallsBack(t *testing.T) {
	metrics := NewMetrics("test", "client")
	reg := prometheus.NewRegistry()
	require.NoError(t, metrics.Register(reg))

	client, err := New(
		WithClientName("  "),
		WithMetrics(metrics),
		WithBaseTransport(RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			return okResponse(req, http.StatusBadGateway), nil
		})),
	)
	require.NoError(t, err)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://product-service:3001/products", http.NoBody)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	families, err := reg.Gather()
	require.NoError(t, err)

	got := counterValue(families, "test_client_upstream_requests_total", map[string]string{
		LabelClient: "http",
		LabelHost:   "product-service:3001",
		LabelMethod: http.MethodGet,
		LabelCode:   "502",
	})
	require.InDelta(t, 1, got, 1e-9)
}

func TestChainOrder(t *testing.T) {
	var order []string

	mark := func(name string) Middleware {
		return func(next http.RoundTripper) http.RoundTripper {
			return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
				order = append(order, name)
				return next.RoundTrip(req)
			})
		}
	}

	rt := Chain(mark("a"), mark("b"))(RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		order = append(order, "base")
		return okResponse(req, http.StatusNoContent), nil
	}))

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.test", http.NoBody)
	require.NoError(t, err)

	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, []string{"a", "b", "base"}, order)
}

func counterValue(families []*io_prometheus_client.MetricFamily, name string, labels map[string]string) float64 {
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}

		for _, metric := range mf.GetMetric() {
			if matchLabels(metric.GetLabel(), labels) {
				return metric.GetCounter().GetValue()
			}
		}
	}

	return 0
}

func matchLabels(metricLabels []*io_prometheus_client.LabelPair, expected map[string]string) bool {
	if len(metricLabels) != len(expected) {
		return false
	}

	for _, labelPair := range metricLabels {
		value, ok := expected[labelPair.GetName()]
		if !ok || value != labelPair.GetValue() {
			return false
		}
	}

	return true
}

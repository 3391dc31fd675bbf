package service_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/shortlink-org/shop/config"
	"github.com/shortlink-org/shop/health"
	request_id_middleware "github.com/shortlink-org/shop/http/middleware/request_id"
	"github.com/shortlink-org/shop/logger"
	"github.com/shortlink-org/shop/observability/metrics"
	"github.com/shortlink-org/shop/service"
)

func newDeps(t *testing.T) (service.Deps, *bytes.Buffer) {
	t.Helper()

	buf := new(bytes.Buffer)
	log, err := logger.New(logger.Configuration{
		Writer:        buf,
		Level:         logger.INFO_LEVEL,
		ContextFields: []logger.ContextFields{request_id_middleware.LogFields},
	})
	require.NoError(t, err)

	monitoring, err := metrics.New("test")
	require.NoError(t, err)

	return service.Deps{
		Config:     config.NewFromMap(nil),
		Log:        log,
		Monitoring: monitoring,
		Env:        "test",
	}, buf
}

func TestRouterServesRoutesAndObservability(t *testing.T) {
	deps, logs := newDeps(t)

	handler, err := service.NewRouter("test", deps, func(r chi.Router) {
		r.Get("/health", health.Handler(deps.Env, "Test"))
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"test - Test Service is healthy"}`, rec.Body.String())
	require.NotEmpty(t, rec.Header().Get(request_id_middleware.Header))
	require.Contains(t, logs.String(), "request completed")

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "http_requests_total")

	for _, path := range []string{"/live", "/ready"} {
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, http.NoBody))
		require.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRouterKeepsInboundRequestID(t *testing.T) {
	deps, logs := newDeps(t)

	var seen string

	handler, err := service.NewRouter("test", deps, func(r chi.Router) {
		r.Get("/echo", func(w http.ResponseWriter, r *http.Request) {
			seen = request_id_middleware.FromContext(r.Context())
			w.WriteHeader(http.StatusNoContent)
		})
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/echo", http.NoBody)
	req.Header.Set(request_id_middleware.Header, "abc")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "abc", seen)
	require.Equal(t, "abc", rec.Header().Get(request_id_middleware.Header))
	require.Contains(t, logs.String(), `"request_id":"abc"`)
}

func TestRouterUnknownPath(t *testing.T) {
	deps, _ := newDeps(t)

	handler, err := service.NewRouter("test", deps, func(chi.Router) {})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", http.NoBody))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAppStartAndShutdown(t *testing.T) {
	cfg := config.NewFromMap(map[string]any{
		"PORT":       0,
		"NODE_ENV":   "test",
		"TRACER_URI": "",
	})

	app, err := service.New(context.Background(), service.Descriptor{
		Name:  "probe",
		Label: "Probe",
		Port:  3999,
		Mount: func(deps service.Deps) (func(chi.Router), error) {
			return func(r chi.Router) {
				r.Get("/health", health.Handler(deps.Env, "Probe"))
			}, nil
		},
	}, cfg)
	require.NoError(t, err)

	addr, serveErr, err := app.Start()
	require.NoError(t, err)

	resp, err := http.Get(fmt.Sprintf("http://%s/health", addr)) //nolint:noctx // test
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"status":"test - Probe Service is healthy"}`, string(body))

	require.NoError(t, app.Shutdown(context.Background()))

	_, open := <-serveErr
	require.False(t, open)
}

func TestAppMountError(t *testing.T) {
	mountErr := errors.New("bad backend url")

	_, err := service.New(context.Background(), service.Descriptor{
		Name:  "probe",
		Label: "Probe",
		Mount: func(service.Deps) (func(chi.Router), error) {
			return nil, mountErr
		},
	}, config.NewFromMap(map[string]any{"TRACER_URI": ""}))
	require.ErrorIs(t, err, mountErr)
}

// Package service assembles one shop process: configuration, logging,
// tracing, metrics, the chi router with its middleware and the HTTP server.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shortlink-org/shop/config"
	request_id_middleware "github.com/shortlink-org/shop/http/middleware/request_id"
	http_server "github.com/shortlink-org/shop/http/server"
	"github.com/shortlink-org/shop/logger"
	"github.com/shortlink-org/shop/observability/metrics"
	"github.com/shortlink-org/shop/observability/tracing"
)

const defaultEnv = "development"

// Descriptor is what differs between the four processes.
type Descriptor struct {
	// Name is the default SERVICE_NAME and the metrics namespace.
	Name string
	// Label is the human name used in health answers and the startup line.
	Label string
	// Port is the default PORT.
	Port int
	// Mount registers the service routes. It runs once, before the server starts.
	Mount func(deps Deps) (func(r chi.Router), error)
}

// Deps are handed to Descriptor.Mount.
type Deps struct {
	Config     *config.Config
	Log        logger.Logger
	Monitoring *metrics.Monitoring
	Env        string
}

// App is a fully wired process, ready to Start.
type App struct {
	Server *http.Server
	Log    *logger.SlogLogger

	label           string
	shutdownTimeout time.Duration
	cleanup         []func()
}

// New builds the process described by d. cfg is typically config.New().
func New(ctx context.Context, d Descriptor, cfg *config.Config) (*App, error) {
	cfg.SetDefault("SERVICE_NAME", d.Name)
	cfg.SetDefault("PORT", d.Port)
	cfg.SetDefault("NODE_ENV", defaultEnv)
	cfg.SetDefault("HTTP_SERVER_TIMEOUT", "0s")
	cfg.SetDefault("SHUTDOWN_TIMEOUT", "30s")

	env := cfg.GetString("NODE_ENV")

	baseLog, closeLog, err := logger.NewDefault(ctx, cfg, request_id_middleware.LogFields)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	log := baseLog.WithService(cfg.GetString("SERVICE_NAME"), env)
	app := &App{
		Log:             log,
		label:           d.Label,
		shutdownTimeout: cfg.GetDuration("SHUTDOWN_TIMEOUT"),
		cleanup:         []func(){closeLog},
	}

	_, closeTracing, err := tracing.New(ctx, log, cfg)
	if err != nil {
		app.close()
		return nil, fmt.Errorf("tracing: %w", err)
	}

	app.cleanup = append(app.cleanup, closeTracing)

	monitoring, err := metrics.New(d.Name)
	if err != nil {
		app.close()
		return nil, fmt.Errorf("metrics: %w", err)
	}

	deps := Deps{
		Config:     cfg,
		Log:        log,
		Monitoring: monitoring,
		Env:        env,
	}

	mount, err := d.Mount(deps)
	if err != nil {
		app.close()
		return nil, fmt.Errorf("%s routes: %w", d.Name, err)
	}

	handler, err := NewRouter(cfg.GetString("SERVICE_NAME"), deps, mount)
	if err != nil {
		app.close()
		return nil, err
	}

	app.Server = http_server.New(ctx, handler, http_server.Config{
		Port:    cfg.GetInt("PORT"),
		Timeout: cfg.GetDuration("HTTP_SERVER_TIMEOUT"),
	}, cfg)

	return app, nil
}

// Start binds the listening socket, logs the startup line and serves in the
// background. Serve errors other than a clean shutdown arrive on the channel.
func (a *App) Start() (net.Addr, <-chan error, error) {
	ln, err := net.Listen("tcp", a.Server.Addr)
	if err != nil {
		return nil, nil, fmt.Errorf("listen %s: %w", a.Server.Addr, err)
	}

	port := ln.Addr().(*net.TCPAddr).Port //nolint:forcetypeassert,errcheck // tcp listener
	a.Log.Info(fmt.Sprintf("%s service running on port %d", a.label, port), slog.Int("port", port))

	serveErr := make(chan error, 1)

	go func() {
		errServe := a.Server.Serve(ln)
		if errServe != nil && !errors.Is(errServe, http.ErrServerClosed) {
			serveErr <- errServe
		}

		close(serveErr)
	}()

	return ln.Addr(), serveErr, nil
}

// Shutdown stops accepting requests, waits for in-flight ones, then flushes
// traces and closes the logger.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.Server.Shutdown(ctx)
	if err != nil {
		a.Log.Error("http server shutdown", slog.Any("err", err))
	}

	a.close()

	return err
}

func (a *App) close() {
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		a.cleanup[i]()
	}

	a.cleanup = nil
}

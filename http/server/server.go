package http_server

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/shortlink-org/shop/config"
)

func New(ctx context.Context, h http.Handler, serverConfig Config, cfg *config.Config) *http.Server {
	cfg.SetDefault("HTTP_SERVER_READ_TIMEOUT", "5s")        // the maximum duration for reading the entire request, including the body
	cfg.SetDefault("HTTP_SERVER_WRITE_TIMEOUT", "5s")       // added on top of serverConfig.Timeout when it is set
	cfg.SetDefault("HTTP_SERVER_IDLE_TIMEOUT", "30s")       // the maximum amount of time to wait for the next request when keep-alive is enabled
	cfg.SetDefault("HTTP_SERVER_READ_HEADER_TIMEOUT", "2s") // the amount of time allowed to read request headers

	server := &http.Server{} //nolint:gosec,exhaustruct // timeouts configured via viper immediately below
	server.Addr = fmt.Sprintf(":%d", serverConfig.Port)
	server.Handler = h
	server.BaseContext = func(_ net.Listener) context.Context { return ctx }
	server.ReadTimeout = cfg.GetDuration("HTTP_SERVER_READ_TIMEOUT")
	server.IdleTimeout = cfg.GetDuration("HTTP_SERVER_IDLE_TIMEOUT")
	server.ReadHeaderTimeout = cfg.GetDuration("HTTP_SERVER_READ_HEADER_TIMEOUT")

	// A write timeout would cut off a handler still waiting on a backend, so
	// it only applies together with an explicit request timeout.
	if serverConfig.Timeout > 0 {
		server.Handler = http.TimeoutHandler(h, serverConfig.Timeout, TimeoutMessage)
		server.WriteTimeout = serverConfig.Timeout + cfg.GetDuration("HTTP_SERVER_WRITE_TIMEOUT")
	}

	return server
}

// Package gateway is the public entry point. It maps /api/* routes onto the
// user, product and order backends and relays their JSON answers unchanged.
package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shortlink-org/shop/health"
	"github.com/shortlink-org/shop/http/render"
	"github.com/shortlink-org/shop/logger"
)

// Label names the service in health answers and logs.
const Label = "Gateway"

// emptyObject is forwarded when a POST arrives without a body.
var emptyObject = []byte("{}")

type Gateway struct {
	endpoints Endpoints
	upstream  *Upstream
	log       logger.Logger
	env       string
}

func New(endpoints Endpoints, client *http.Client, log logger.Logger, env string) *Gateway {
	return &Gateway{
		endpoints: endpoints,
		upstream:  NewUpstream(client),
		log:       log,
		env:       env,
	}
}

// Routes mounts GET /health and every entry of Table.
func (g *Gateway) Routes(r chi.Router) {
	r.Get("/health", health.Handler(g.env, Label))

	for _, route := range Table {
		r.Method(route.Method, route.Path, g.proxy(route))
	}
}

func (g *Gateway) proxy(route Route) http.HandlerFunc {
	target := g.endpoints.URL(route.Service, route.Upstream)

	return func(w http.ResponseWriter, r *http.Request) {
		// The backend call runs to completion even if the client goes away.
		ctx := context.WithoutCancel(r.Context())

		result := g.forward(ctx, route, target, r)
		if !result.OK() {
			g.log.ErrorWithContext(ctx, route.Failure,
				slog.String("service", string(route.Service)),
				slog.String("method", route.Method),
				slog.String("upstream", target),
				slog.Any("err", result.Cause()),
			)
			_ = render.Error(w, http.StatusInternalServerError, route.Failure) //nolint:errcheck // client went away

			return
		}

		_ = render.Raw(w, http.StatusOK, result.Payload()) //nolint:errcheck // client went away
	}
}

func (g *Gateway) forward(ctx context.Context, route Route, target string, r *http.Request) Result {
	if !route.ForwardBody {
		return g.upstream.Call(ctx, route.Method, target, nil)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return Failure(fmt.Errorf("read inbound body: %w", err))
	}

	if len(bytes.TrimSpace(body)) == 0 {
		body = emptyObject
	}

	return g.upstream.Call(ctx, route.Method, target, body)
}

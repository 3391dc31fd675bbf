package orders

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/segmentio/encoding/json"

	"github.com/shortlink-org/shop/health"
	"github.com/shortlink-org/shop/http/render"
	"github.com/shortlink-org/shop/logger"
)

type handler struct {
	store *Store
	log   logger.Logger
}

// Routes mounts GET /health, GET /orders and POST /orders.
func Routes(r chi.Router, env string, store *Store, log logger.Logger) {
	h := handler{store: store, log: log}

	r.Get("/health", health.Handler(env, Label))
	r.Get("/orders", h.list)
	r.Post("/orders", h.create)
}

func (h handler) list(w http.ResponseWriter, _ *http.Request) {
	_ = render.JSON(w, http.StatusOK, h.store.List()) //nolint:errcheck // client went away
}

func (h handler) create(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r.Body)
	if err != nil {
		h.log.WarnWithContext(r.Context(), "rejected order body", slog.Any("err", err))
		_ = render.Error(w, http.StatusBadRequest, err.Error()) //nolint:errcheck // client went away

		return
	}

	order := h.store.Create(fields)
	h.logCreated(r.Context(), order)

	_ = render.JSON(w, http.StatusOK, order) //nolint:errcheck // client went away
}

func (h handler) logCreated(ctx context.Context, order Order) {
	h.log.InfoWithContext(ctx, "order created",
		slog.Int("order_id", order.ID),
		slog.Any("user_id", order.UserID),
		slog.Any("product_id", order.ProductID),
	)
}

// decodeFields accepts any JSON document. Only a JSON object contributes
// fields; an empty body, an array or a scalar yield no fields.
func decodeFields(body io.Reader) (Fields, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return Fields{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc any

	err = dec.Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	if fields, ok := doc.(map[string]any); ok {
		return fields, nil
	}

	return Fields{}, nil
}

// Package products is the product backend: a fixed, read-only catalogue.
package products

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shortlink-org/shop/health"
	"github.com/shortlink-org/shop/http/render"
)

const Label = "Product"

type Product struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

func List() []Product {
	return []Product{
		{ID: 1, Name: "Laptop", Price: 999},
		{ID: 2, Name: "Phone", Price: 699},
	}
}

func Routes(r chi.Router, env string) {
	r.Get("/health", health.Handler(env, Label))
	r.Get("/products", func(w http.ResponseWriter, _ *http.Request) {
		_ = render.JSON(w, http.StatusOK, List()) //nolint:errcheck // client went away
	})
}

// Package users is the user backend: a fixed, read-only list of users.
package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shortlink-org/shop/health"
	"github.com/shortlink-org/shop/http/render"
)

// Label names the service in health answers and logs.
const Label = "User"

type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// List returns a fresh copy of the fixed user list.
func List() []User {
	return []User{
		{ID: 1, Name: "John Doe"},
		{ID: 2, Name: "Jane Smith"},
	}
}

// Routes mounts GET /health and GET /users.
func Routes(r chi.Router, env string) {
	r.Get("/health", health.Handler(env, Label))
	r.Get("/users", func(w http.ResponseWriter, _ *http.Request) {
		_ = render.JSON(w, http.StatusOK, List()) //nolint:errcheck // client went away
	})
}

// Package render writes JSON responses.
package render

import (
	"net/http"

	"github.com/segmentio/encoding/json"
)

const contentTypeJSON = "application/json; charset=utf-8"

// JSON encodes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return Raw(w, status, payload)
}

// Raw writes an already encoded JSON document unchanged.
func Raw(w http.ResponseWriter, status int, payload []byte) error {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)

	_, err := w.Write(payload)

	return err
}

// Error writes {"error": msg}.
func Error(w http.ResponseWriter, status int, msg string) error {
	return JSON(w, status, ErrorResponse{Error: msg})
}

// ErrorResponse is the body of every error answered by the services.
type ErrorResponse struct {
	Error string `json:"error"`
}

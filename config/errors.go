package config

import "fmt"

// ReadError is returned when a .env file exists but cannot be parsed.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("config: read .env: %v", e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

package gateway

import "errors"

var (
	// ErrInvalidEndpoint is returned at start-up for an unusable backend base URL.
	ErrInvalidEndpoint = errors.New("gateway: invalid backend endpoint")

	// ErrUpstreamStatus is the failure cause for a non-2xx backend answer.
	ErrUpstreamStatus = errors.New("gateway: backend answered with non-2xx status")

	// ErrUpstreamBody is the failure cause for a backend answer that is not JSON.
	ErrUpstreamBody = errors.New("gateway: backend answered with malformed JSON")
)

package http_client

import (
	"net/http"

	request_id_middleware "github.com/shortlink-org/shop/http/middleware/request_id"
)

// RequestIDMiddleware copies the inbound request id from the context onto the
// outbound request unless the caller already set one.
func RequestIDMiddleware() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			id := request_id_middleware.FromContext(req.Context())
			if id == "" || req.Header.Get(request_id_middleware.Header) != "" {
				return next.RoundTrip(req)
			}

			// RoundTrippers must not modify the caller's request.
			clone := req.Clone(req.Context())
			clone.Header.Set(request_id_middleware.Header, id)

			return next.RoundTrip(clone)
		})
	}
}

package gateway

import "net/http"

// Route is one row of the gateway's route table.
type Route struct {
	Method   string
	Path     string
	Service  Service
	Upstream string
	// Failure is the fixed message returned to clients on any failure.
	Failure string
	// ForwardBody passes the inbound body through to the backend.
	ForwardBody bool
}

// Table is the full set of proxied routes.
var Table = []Route{
	{
		Method:   http.MethodGet,
		Path:     "/api/users",
		Service:  Users,
		Upstream: "/users",
		Failure:  "Error fetching users",
	},
	{
		Method:   http.MethodGet,
		Path:     "/api/products",
		Service:  Products,
		Upstream: "/products",
		Failure:  "Error fetching products",
	},
	{
		Method:   http.MethodGet,
		Path:     "/api/orders",
		Service:  Orders,
		Upstream: "/orders",
		Failure:  "Error fetching orders",
	},
	{
		Method:      http.MethodPost,
		Path:        "/api/orders",
		Service:     Orders,
		Upstream:    "/orders",
		Failure:     "Error creating order",
		ForwardBody: true,
	},
}

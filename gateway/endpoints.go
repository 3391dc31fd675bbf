package gateway

import (
	"fmt"
	"net/url"

	"github.com/shortlink-org/shop/config"
)

// Service is the logical name of a backend.
type Service string

const (
	Users    Service = "users"
	Products Service = "products"
	Orders   Service = "orders"
)

// Endpoints maps every backend to its base URL. It is resolved once at
// process start and never changes afterwards.
type Endpoints struct {
	bases map[Service]*url.URL
}

// endpointKeys lists the configuration key and fallback of each backend.
var endpointKeys = []struct {
	service  Service
	key      string
	fallback string
}{
	{service: Users, key: "USER_API_URL", fallback: "http://user-service:3000"},
	{service: Products, key: "PRODUCT_API_URL", fallback: "http://product-service:3001"},
	{service: Orders, key: "ORDER_API_URL", fallback: "http://order-service:3002"},
}

// NewEndpoints reads USER_API_URL, PRODUCT_API_URL and ORDER_API_URL.
func NewEndpoints(cfg *config.Config) (Endpoints, error) {
	raw := make(map[Service]string, len(endpointKeys))

	for _, e := range endpointKeys {
		cfg.SetDefault(e.key, e.fallback)
		raw[e.service] = cfg.GetString(e.key)
	}

	return ParseEndpoints(raw)
}

// ParseEndpoints validates base URLs given per service. Every service must be present.
func ParseEndpoints(raw map[Service]string) (Endpoints, error) {
	endpoints := Endpoints{bases: make(map[Service]*url.URL, len(endpointKeys))}

	for _, e := range endpointKeys {
		value, ok := raw[e.service]
		if !ok {
			return Endpoints{}, fmt.Errorf("%w: %s is not set", ErrInvalidEndpoint, e.service)
		}

		base, err := url.Parse(value)
		if err != nil {
			return Endpoints{}, fmt.Errorf("%w: %s: %w", ErrInvalidEndpoint, e.key, err)
		}

		if base.Scheme == "" || base.Host == "" {
			return Endpoints{}, fmt.Errorf("%w: %s=%q needs scheme and host", ErrInvalidEndpoint, e.key, value)
		}

		endpoints.bases[e.service] = base
	}

	return endpoints, nil
}

// URL joins the backend base URL of service with path.
func (e Endpoints) URL(service Service, path string) string {
	base, ok := e.bases[service]
	if !ok {
		return ""
	}

	return base.JoinPath(path).String()
}

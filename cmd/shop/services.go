package main

import (
	"github.com/go-chi/chi/v5"

	"github.com/shortlink-org/shop/gateway"
	http_client "github.com/shortlink-org/shop/http/client"
	"github.com/shortlink-org/shop/orders"
	"github.com/shortlink-org/shop/products"
	"github.com/shortlink-org/shop/service"
	"github.com/shortlink-org/shop/users"
)

func descriptors() []service.Descriptor {
	return []service.Descriptor{
		{Name: "gateway", Label: gateway.Label, Port: 3003, Mount: mountGateway},
		{Name: "users", Label: users.Label, Port: 3000, Mount: mountUsers},
		{Name: "products", Label: products.Label, Port: 3001, Mount: mountProducts},
		{Name: "orders", Label: orders.Label, Port: 3002, Mount: mountOrders},
	}
}

func mountGateway(deps service.Deps) (func(chi.Router), error) {
	endpoints, err := gateway.NewEndpoints(deps.Config)
	if err != nil {
		return nil, err
	}

	metrics := http_client.NewMetrics("shop", "gateway")

	err = metrics.Register(deps.Monitoring.Prometheus)
	if err != nil {
		return nil, err
	}

	client, err := http_client.New(
		http_client.WithClientName("gateway"),
		http_client.WithMetrics(metrics),
	)
	if err != nil {
		return nil, err
	}

	return gateway.New(endpoints, client, deps.Log, deps.Env).Routes, nil
}

func mountUsers(deps service.Deps) (func(chi.Router), error) {
	return func(r chi.Router) {
		users.Routes(r, deps.Env)
	}, nil
}

func mountProducts(deps service.Deps) (func(chi.Router), error) {
	return func(r chi.Router) {
		products.Routes(r, deps.Env)
	}, nil
}

func mountOrders(deps service.Deps) (func(chi.Router), error) {
	store := orders.NewStore()

	return func(r chi.Router) {
		orders.Routes(r, deps.Env, store, deps.Log)
	}, nil
}

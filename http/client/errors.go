package http_client

import "errors"

var ErrNilMetrics = errors.New("http_client: metrics must not be nil")

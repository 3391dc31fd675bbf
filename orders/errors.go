package orders

import "errors"

// ErrMalformedBody is returned for a POST /orders body that is not JSON.
var ErrMalformedBody = errors.New("orders: malformed JSON body")

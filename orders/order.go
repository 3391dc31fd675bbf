// Package orders is the order backend: an in-memory, append-only order log
// that lives as long as the process.
package orders

import (
	"time"
)

// Label names the service in health answers and logs.
const Label = "Order"

// Order is never mutated after creation. UserID and ProductID are opaque:
// whatever JSON value the client sent is kept, and a missing field stays nil
// and is omitted from the encoded record.
type Order struct {
	ID        int       `json:"id"`
	UserID    any       `json:"userId,omitempty"`
	ProductID any       `json:"productId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Fields is the loosely typed request body of POST /orders.
type Fields map[string]any

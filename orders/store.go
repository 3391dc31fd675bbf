package orders

import (
	"sync"
	"time"
)

// Store is the order log. Identifier assignment and append happen under one
// lock, so concurrent creators never share an id.
type Store struct {
	mu     sync.RWMutex
	orders []Order
	now    func() time.Time
}

type StoreOption func(*Store)

// WithClock replaces time.Now as the source of order timestamps.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(opts ...StoreOption) *Store {
	s := &Store{now: time.Now}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Create appends a new order with id = number of existing orders + 1.
func (s *Store) Create(fields Fields) Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := Order{
		ID:        len(s.orders) + 1,
		UserID:    fields["userId"],
		ProductID: fields["productId"],
		Timestamp: s.now().UTC().Truncate(time.Millisecond),
	}

	s.orders = append(s.orders, order)

	return order
}

// List returns every order in insertion order. The slice is a copy.
func (s *Store) List() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Order, len(s.orders))
	copy(out, s.orders)

	return out
}

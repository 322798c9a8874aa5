// Package store owns the authoritative in-memory order collection for the
// session and keeps it synchronized with the storage backend.
package store

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/quickbite/quickbite-app/models"
	"github.com/quickbite/quickbite-app/statemachine"
	"github.com/quickbite/quickbite-app/storage"
	"github.com/quickbite/quickbite-app/utils"
)

// ErrOrderNotFound is returned when an order id is unknown to the store.
var ErrOrderNotFound = errors.New("order not found")

// OrderStore holds every order of the session, newest first. Each mutation
// re-serializes the full collection to the backend; orders are never deleted,
// only terminated in place.
type OrderStore struct {
	mu      sync.RWMutex
	orders  []models.Order
	backend storage.Backend
	policy  statemachine.TransitionPolicy
}

// NewOrderStore loads the persisted collection from the backend. Absent or
// corrupt data falls back to an empty collection; the session rebuilds from
// scratch rather than crashing.
func NewOrderStore(backend storage.Backend, policy statemachine.TransitionPolicy) (*OrderStore, error) {
	s := &OrderStore{backend: backend, policy: policy}

	raw, ok, err := backend.Get(storage.OrdersKey)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := json.Unmarshal(raw, &s.orders); err != nil {
			utils.ErrorLogger.Printf("discarding corrupt order collection: %v", err)
			s.orders = nil
		}
	}
	return s, nil
}

// persistLocked writes the full collection. Callers hold the write lock.
func (s *OrderStore) persistLocked() error {
	raw, err := json.Marshal(s.orders)
	if err != nil {
		return err
	}
	return s.backend.Set(storage.OrdersKey, raw)
}

// Prepend inserts a freshly created order at the front (newest-first display
// order) and persists the collection.
func (s *OrderStore) Prepend(order models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append([]models.Order{order}, s.orders...)
	return s.persistLocked()
}

// Len is the number of orders in the store.
func (s *OrderStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

// All returns every order in store order.
func (s *OrderStore) All() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// ByID returns the order with the given id.
func (s *OrderStore) ByID(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// ByStatus returns all orders with the given status, in store order.
func (s *OrderStore) ByStatus(status models.OrderStatus) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Order
	for _, o := range s.orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// ActiveOrders returns every order the staff dashboard still considers
// actionable: pending, preparing, ready or delivering.
func (s *OrderStore) ActiveOrders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Order
	for _, o := range s.orders {
		if o.Status.IsActive() {
			out = append(out, o)
		}
	}
	return out
}

// CompletedOrders returns the delivered and cancelled orders, in store order.
func (s *OrderStore) CompletedOrders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Order
	for _, o := range s.orders {
		if o.Status.IsTerminal() {
			out = append(out, o)
		}
	}
	return out
}

// Advance moves an order to its single defined next state. changed is false
// when the order is already terminal; under the Strict policy that case
// returns ErrInvalidTransition instead. Unknown ids return ErrOrderNotFound.
func (s *OrderStore) Advance(id string) (models.Order, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return models.Order{}, false, ErrOrderNotFound
	}
	next, ok := statemachine.Next(s.orders[i].Status)
	if !ok {
		if s.policy == statemachine.Strict {
			return s.orders[i], false, statemachine.ErrInvalidTransition
		}
		return s.orders[i], false, nil
	}
	s.orders[i].Status = next
	s.orders[i].UpdatedAt = time.Now()
	if err := s.persistLocked(); err != nil {
		return s.orders[i], true, err
	}
	return s.orders[i], true, nil
}

// Cancel sets an order's status to cancelled unless it is already terminal,
// in which case it behaves like an invalid advance.
func (s *OrderStore) Cancel(id string) (models.Order, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return models.Order{}, false, ErrOrderNotFound
	}
	if !statemachine.CanCancel(s.orders[i].Status) {
		if s.policy == statemachine.Strict {
			return s.orders[i], false, statemachine.ErrInvalidTransition
		}
		return s.orders[i], false, nil
	}
	s.orders[i].Status = models.StatusCancelled
	s.orders[i].UpdatedAt = time.Now()
	if err := s.persistLocked(); err != nil {
		return s.orders[i], true, err
	}
	return s.orders[i], true, nil
}

func (s *OrderStore) indexLocked(id string) int {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return i
		}
	}
	return -1
}

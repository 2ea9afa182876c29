package storage

import (
	"sync"

	"github.com/linemk/siya-shop/internal/domain/models"
)

// SessionStorage owns the current identity and the per-identity order
// history. Identity has exactly two states: anonymous and authenticated.
type SessionStorage interface {
	Login(email string)
	Logout()
	Current() (models.User, bool)
	// AddOrder appends to the current identity's history and reports
	// whether anything was recorded. With no identity present it is a
	// silent no-op: guest checkout succeeds but leaves no record.
	AddOrder(order models.Order) bool
	// Orders returns the current identity's history, oldest first.
	// Anonymous callers get an empty history.
	Orders() []models.Order
	// OrdersFor returns the history for a specific email, oldest first.
	OrdersFor(email string) []models.Order
}

// sessionStore keeps histories partitioned per email so that a later
// login by a different identity never sees another identity's orders.
// Logout drops only the current identity; the history map survives for
// the lifetime of the process.
type sessionStore struct {
	mu        sync.RWMutex
	current   *models.User
	histories map[string][]models.Order
}

func NewSessionStore() SessionStorage {
	return &sessionStore{histories: make(map[string][]models.Order)}
}

func (s *sessionStore) Login(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &models.User{Email: email}
}

func (s *sessionStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

func (s *sessionStore) Current() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return models.User{}, false
	}
	return *s.current, true
}

func (s *sessionStore) AddOrder(order models.Order) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return false
	}
	email := s.current.Email
	s.histories[email] = append(s.histories[email], order)
	return true
}

func (s *sessionStore) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	return copyOrders(s.histories[s.current.Email])
}

func (s *sessionStore) OrdersFor(email string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyOrders(s.histories[email])
}

// copyOrders copies each order's lines too, so callers cannot reach
// into the stored history through a returned slice.
func copyOrders(orders []models.Order) []models.Order {
	out := make([]models.Order, len(orders))
	for i, order := range orders {
		order.Lines = append([]models.CartLine(nil), order.Lines...)
		out[i] = order
	}
	return out
}

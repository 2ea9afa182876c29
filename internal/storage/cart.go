package storage

import (
	"sync"

	"github.com/linemk/siya-shop/internal/domain/models"
)

// CartStorage owns the list of lines the shopper intends to buy. Every
// operation is a total function over the current state: invalid input
// degrades to a no-op, nothing here returns an error.
type CartStorage interface {
	// AddItem merges by (product id, selected option): an existing line
	// keeps its position and gains quantity, otherwise a value-copied
	// line is appended.
	AddItem(product *models.Product, quantity int, selectedOption string)
	// UpdateQuantity sets the quantity of the line matching the full
	// (product id, selected option) pair. A quantity <= 0 removes the
	// line. No-op when nothing matches.
	UpdateQuantity(productID int64, selectedOption string, newQuantity int)
	// RemoveItem drops every line for the product id, across variants.
	RemoveItem(productID int64)
	Clear()
	// Items returns a value-copied snapshot in insertion order.
	Items() []models.CartLine
	TotalItems() int
}

// cartStore is the in-memory implementation. HTTP handlers run
// concurrently, so state is guarded by an RWMutex.
type cartStore struct {
	mu    sync.RWMutex
	lines []models.CartLine
}

func NewCartStore() CartStorage {
	return &cartStore{}
}

func (s *cartStore) AddItem(product *models.Product, quantity int, selectedOption string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == product.ID && s.lines[i].SelectedOption == selectedOption {
			s.lines[i].Quantity += quantity
			return
		}
	}
	s.lines = append(s.lines, models.NewCartLine(product, quantity, selectedOption))
}

func (s *cartStore) UpdateQuantity(productID int64, selectedOption string, newQuantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID != productID || s.lines[i].SelectedOption != selectedOption {
			continue
		}
		if newQuantity <= 0 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		} else {
			s.lines[i].Quantity = newQuantity
		}
		return
	}
}

func (s *cartStore) RemoveItem(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.lines[:0]
	for _, line := range s.lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	s.lines = kept
}

func (s *cartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

func (s *cartStore) Items() []models.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.CartLine, len(s.lines))
	copy(items, s.lines)
	return items
}

func (s *cartStore) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

package logic

import (
	"sync"

	"shopgrip/internal/domain"
)

// MemoryCatalogStore is an in-memory implementation of CatalogStore
type MemoryCatalogStore struct {
	mu       sync.RWMutex
	page     domain.HomePage
	products map[string]domain.Product
}

// NewMemoryCatalogStore creates a new memory-based catalog store
func NewMemoryCatalogStore() *MemoryCatalogStore {
	return &MemoryCatalogStore{
		products: make(map[string]domain.Product),
	}
}

func (s *MemoryCatalogStore) HomePage() domain.HomePage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.page
}

// SetHomePage replaces the home page and indexes its products by handle
func (s *MemoryCatalogStore) SetHomePage(page domain.HomePage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = page
	for _, p := range page.BestSellers {
		s.products[p.Handle] = p
	}
}

func (s *MemoryCatalogStore) Product(handle string) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[handle]
	return p, ok
}

func (s *MemoryCatalogStore) AddProducts(products ...domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range products {
		s.products[p.Handle] = p
	}
}

// MemoryCartStore is an in-memory implementation of CartStore
type MemoryCartStore struct {
	mu   sync.RWMutex
	cart *domain.Cart
}

// NewMemoryCartStore creates an empty cart store
func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{}
}

func (s *MemoryCartStore) CartID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cart == nil {
		return ""
	}
	return s.cart.ID
}

func (s *MemoryCartStore) Cart() *domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart
}

func (s *MemoryCartStore) SetCart(cart *domain.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = cart
}

func (s *MemoryCartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

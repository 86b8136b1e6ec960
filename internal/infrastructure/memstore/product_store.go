package memstore

import (
	"context"
	"sync"

	"github.com/dowhile/storefront-system/internal/core/domain"
)

// ProductStore holds catalog products in insertion order.
type ProductStore struct {
	mu       sync.RWMutex
	products []domain.Product
	index    map[string]int
}

func NewProductStore(products ...domain.Product) *ProductStore {
	s := &ProductStore{index: make(map[string]int, len(products))}
	for _, p := range products {
		s.index[p.ID] = len(s.products)
		s.products = append(s.products, p)
	}
	return s
}

func (s *ProductStore) List(_ context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *ProductStore) FindByID(_ context.Context, id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	product := s.products[i]
	return &product, nil
}

func (s *ProductStore) Save(_ context.Context, product *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[product.ID]
	if !ok {
		return domain.ErrNotFound
	}
	s.products[i] = *product
	return nil
}

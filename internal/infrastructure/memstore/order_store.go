package memstore

import (
	"context"
	"sync"

	"github.com/dowhile/storefront-system/internal/core/domain"
)

// OrderStore holds orders in insertion order. Status transitions are checked
// and applied under the write lock, so at most one mutation is in flight per
// record.
type OrderStore struct {
	mu     sync.RWMutex
	orders []domain.Order
	index  map[string]int
}

func NewOrderStore(orders ...domain.Order) *OrderStore {
	s := &OrderStore{index: make(map[string]int, len(orders))}
	for _, o := range orders {
		s.index[o.ID] = len(s.orders)
		s.orders = append(s.orders, o)
	}
	return s
}

func (s *OrderStore) Create(_ context.Context, order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.index[order.ID] = len(s.orders)
	s.orders = append(s.orders, *order)
	return nil
}

func (s *OrderStore) FindByID(_ context.Context, id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	order := s.orders[i]
	return &order, nil
}

func (s *OrderStore) List(_ context.Context, buyerID string) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if buyerID == "" || o.BuyerID == buyerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *OrderStore) UpdateStatus(_ context.Context, id string, target domain.OrderStatus) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	updated, err := s.orders[i].Transition(target)
	if err != nil {
		return nil, err
	}
	s.orders[i] = updated
	return &updated, nil
}

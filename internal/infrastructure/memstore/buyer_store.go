package memstore

import (
	"context"
	"sync"

	"github.com/dowhile/storefront-system/internal/core/domain"
)

// BuyerStore holds buyer profiles and addresses keyed by username.
type BuyerStore struct {
	mu        sync.RWMutex
	profiles  map[string]domain.Profile
	addresses map[string]domain.Address
}

func NewBuyerStore(profiles map[string]domain.Profile, addresses map[string]domain.Address) *BuyerStore {
	if profiles == nil {
		profiles = map[string]domain.Profile{}
	}
	if addresses == nil {
		addresses = map[string]domain.Address{}
	}
	return &BuyerStore{profiles: profiles, addresses: addresses}
}

func (s *BuyerStore) FindProfile(_ context.Context, username string) (*domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &profile, nil
}

func (s *BuyerStore) FindAddress(_ context.Context, username string) (*domain.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	address, ok := s.addresses[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &address, nil
}

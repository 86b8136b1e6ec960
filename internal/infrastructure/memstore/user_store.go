// Package memstore provides in-memory store adapters. They support
// concurrent reads and serialized writes and are the default backing for all
// services; the fixtures file seeds them with the reference data set.
package memstore

import (
	"context"
	"sync"

	"github.com/dowhile/storefront-system/internal/core/domain"
)

// UserStore holds credential records keyed by username.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewUserStore(users ...domain.User) *UserStore {
	s := &UserStore{users: make(map[string]domain.User, len(users))}
	for _, u := range users {
		s.users[u.Username] = u
	}
	return s
}

func (s *UserStore) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &user, nil
}

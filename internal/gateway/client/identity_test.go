package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dowhile/storefront-system/internal/core/domain"
)

type mapTokenCache struct {
	entries map[string]domain.Identity
}

func newMapTokenCache() *mapTokenCache {
	return &mapTokenCache{entries: make(map[string]domain.Identity)}
}

func (c *mapTokenCache) Get(_ context.Context, token string) (*domain.Identity, error) {
	identity, ok := c.entries[token]
	if !ok {
		return nil, nil
	}
	return &identity, nil
}

func (c *mapTokenCache) Put(_ context.Context, token string, identity domain.Identity) error {
	c.entries[token] = identity
	return nil
}

func identityBackend(t *testing.T, calls *atomic.Int64) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/login":
			_ = json.NewEncoder(w).Encode(map[string]string{"token": "signed-token"})
		case "/api/validate":
			calls.Add(1)
			_ = json.NewEncoder(w).Encode(domain.Identity{
				Username: "dowhile2021",
				Roles:    []domain.Role{domain.RoleBuyer},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"statusCode": 404, "code": domain.CodeNotFound, "message": "Resource not found",
			})
		}
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api", "identity", time.Second, zerolog.Nop())
}

func TestIdentityClient_Login(t *testing.T) {
	var calls atomic.Int64
	client := NewIdentityClient(identityBackend(t, &calls), nil)

	token, err := client.Login(context.Background(), "dowhile2021", "password123")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
}

func TestIdentityClient_Validate_CachesSuccess(t *testing.T) {
	var calls atomic.Int64
	client := NewIdentityClient(identityBackend(t, &calls), newMapTokenCache())

	for i := 0; i < 3; i++ {
		identity, err := client.Validate(context.Background(), "signed-token")
		require.NoError(t, err)
		assert.Equal(t, "dowhile2021", identity.Username)
	}

	// first call misses and fills the cache; the rest are served from it
	assert.Equal(t, int64(1), calls.Load())
}

func TestIdentityClient_Validate_NoCache(t *testing.T) {
	var calls atomic.Int64
	client := NewIdentityClient(identityBackend(t, &calls), nil)

	for i := 0; i < 2; i++ {
		_, err := client.Validate(context.Background(), "signed-token")
		require.NoError(t, err)
	}
	assert.Equal(t, int64(2), calls.Load())
}

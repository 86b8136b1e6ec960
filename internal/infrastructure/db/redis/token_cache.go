package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dowhile/storefront-system/internal/core/domain"
)

const cacheTTL = time.Minute

// TokenCache memoizes successful token validations in Redis so the gateway
// does not hit the identity service on every request. Only positive results
// are cached, with a TTL well below the token lifetime.
// Key format: tokenvalid:<sha256 of raw token>
type TokenCache struct {
	client *redis.Client
}

// NewTokenCache creates a TokenCache wrapping the given Redis client.
func NewTokenCache(client *redis.Client) *TokenCache {
	return &TokenCache{client: client}
}

// Get returns the cached identity for the token, or (nil, nil) on a miss.
func (c *TokenCache) Get(ctx context.Context, token string) (*domain.Identity, error) {
	raw, err := c.client.Get(ctx, c.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("token cache get: %w", err)
	}

	var identity domain.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		return nil, fmt.Errorf("token cache decode: %w", err)
	}
	return &identity, nil
}

// Put records a successful validation (expires after cacheTTL).
func (c *TokenCache) Put(ctx context.Context, token string, identity domain.Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("token cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(token), raw, cacheTTL).Err()
}

func (c *TokenCache) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "tokenvalid:" + hex.EncodeToString(sum[:])
}

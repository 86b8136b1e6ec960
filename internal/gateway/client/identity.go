package client

import (
	"context"

	"github.com/dowhile/storefront-system/internal/api/metrics"
	"github.com/dowhile/storefront-system/internal/core/domain"
)

// TokenCache memoizes successful token validations. Implementations may lose
// entries at any time; the cache is an optimization, never an authority.
type TokenCache interface {
	Get(ctx context.Context, token string) (*domain.Identity, error)
	Put(ctx context.Context, token string, identity domain.Identity) error
}

// IdentityClient talks to the credential authority. Validation is always
// delegated: the gateway forwards the bearer token verbatim and never decodes
// it locally.
type IdentityClient struct {
	base  *Client
	cache TokenCache
}

// NewIdentityClient builds an identity client. cache may be nil to disable
// validation caching.
func NewIdentityClient(base *Client, cache TokenCache) *IdentityClient {
	return &IdentityClient{base: base, cache: cache}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type validateRequest struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a capability token.
func (c *IdentityClient) Login(ctx context.Context, username, password string) (string, error) {
	var res loginResponse
	if err := c.base.post(ctx, "/login", loginRequest{Username: username, Password: password}, &res); err != nil {
		return "", err
	}
	return res.Token, nil
}

// Validate resolves a token to the identity it encodes. Successful results
// are cached briefly when a cache is configured; cache failures fall through
// to the identity service.
func (c *IdentityClient) Validate(ctx context.Context, token string) (domain.Identity, error) {
	if c.cache != nil {
		if cached, err := c.cache.Get(ctx, token); err == nil && cached != nil {
			metrics.TokenCacheTotal.WithLabelValues("hit").Inc()
			return *cached, nil
		}
		metrics.TokenCacheTotal.WithLabelValues("miss").Inc()
	}

	var identity domain.Identity
	if err := c.base.post(ctx, "/validate", validateRequest{Token: token}, &identity); err != nil {
		return domain.Identity{}, err
	}

	if c.cache != nil {
		if err := c.cache.Put(ctx, token, identity); err != nil {
			c.base.log.Warn().Err(err).Msg("token cache write failed")
		}
	}
	return identity, nil
}

package ports

import (
	"context"

	"github.com/dowhile/storefront-system/internal/core/domain"
)

// UserRepository defines lookup of stored credential records.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

// TokenSigner issues a signed capability token for an identity.
type TokenSigner interface {
	Sign(identity domain.Identity) (string, error)
}

// TokenVerifier checks a token's signature and expiry and decodes the
// identity claims. Verification requires only the public half of the key
// pair, so it can run anywhere the issuer's public key is distributed.
type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

// AuthService defines the credential authority use cases.
type AuthService interface {
	// Authenticate exchanges credentials for a signed capability token.
	Authenticate(ctx context.Context, username, password string) (string, error)
	// Validate verifies a token and returns the identity it encodes.
	Validate(ctx context.Context, token string) (domain.Identity, error)
}

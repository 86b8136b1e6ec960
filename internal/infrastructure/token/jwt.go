// Package token implements capability tokens as RS256-signed JWTs. Tokens
// are signed with the authority's private key and verifiable by anyone
// holding the public key, which is what allows validation to be delegated.
package token

import (
	"crypto/rsa"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dowhile/storefront-system/internal/core/domain"
)

const defaultTTL = 24 * time.Hour

// identityClaims is the exact claim set of a capability token: the identity
// plus the registered expiry. Nothing may be added or removed in transit.
type identityClaims struct {
	Username string        `json:"username"`
	Roles    []domain.Role `json:"roles"`
	jwt.RegisteredClaims
}

// JWT signs and verifies capability tokens. The private key may be nil for a
// verify-only instance.
type JWT struct {
	private *rsa.PrivateKey
	public  *rsa.PublicKey
	ttl     time.Duration
}

// NewJWT builds a token codec. A non-positive ttl falls back to 24 hours.
func NewJWT(private *rsa.PrivateKey, public *rsa.PublicKey, ttl time.Duration) *JWT {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &JWT{private: private, public: public, ttl: ttl}
}

// Sign issues a token for identity, expiring ttl from now.
func (j *JWT) Sign(identity domain.Identity) (string, error) {
	if j.private == nil {
		return "", fmt.Errorf("token: signing key not configured")
	}

	now := time.Now().UTC()
	claims := identityClaims{
		Username: identity.Username,
		Roles:    identity.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(j.private)
}

// Verify checks signature, algorithm, and expiry, and returns the decoded
// identity. Every failure mode maps to ErrInvalidToken.
func (j *JWT) Verify(token string) (domain.Identity, error) {
	claims := &identityClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return j.public, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil || !parsed.Valid {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	return domain.Identity{Username: claims.Username, Roles: claims.Roles}, nil
}

// LoadPrivateKey reads an RSA private key from a PEM file.
func LoadPrivateKey(path string) (*rsa.PrivateKey, error) {
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("token: read private key: %w", err)
	}
	key, err := jwt.ParseRSAPrivateKeyFromPEM(pem)
	if err != nil {
		return nil, fmt.Errorf("token: parse private key: %w", err)
	}
	return key, nil
}

// LoadPublicKey reads an RSA public key from a PEM file.
func LoadPublicKey(path string) (*rsa.PublicKey, error) {
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("token: read public key: %w", err)
	}
	key, err := jwt.ParseRSAPublicKeyFromPEM(pem)
	if err != nil {
		return nil, fmt.Errorf("token: parse public key: %w", err)
	}
	return key, nil
}

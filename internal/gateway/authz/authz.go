// Package authz is the gateway's authorization gate. Every gated operation
// passes through Authenticate (delegated token validation) and RequireRole
// (role membership) before the handler runs, so authorization failures occur
// before any side effect.
package authz

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dowhile/storefront-system/internal/core/domain"
)

// Validator resolves a bearer token to an identity. In production this is the
// identity client: validation is delegated to the credential authority, never
// performed locally.
type Validator interface {
	Validate(ctx context.Context, token string) (domain.Identity, error)
}

const identityContextKey = "identity"

// Authenticate validates the bearer token and injects the identity into the
// request context. A missing or rejected token short-circuits the request.
func Authenticate(validator Validator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get("Authorization"))
			if token == "" {
				return domain.ErrInvalidToken
			}

			identity, err := validator.Validate(c.Request().Context(), token)
			if err != nil {
				return err
			}

			c.Set(identityContextKey, identity)
			return next(c)
		}
	}
}

// RequireRole rejects the request with ErrForbidden unless the authenticated
// identity holds the role.
func RequireRole(role domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok || !identity.HasRole(role) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

// IdentityFrom extracts the identity injected by Authenticate.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(identityContextKey).(domain.Identity)
	return identity, ok
}

// bearerToken strips an optional "Bearer " prefix; the raw token is forwarded
// verbatim to the credential authority.
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return header
}

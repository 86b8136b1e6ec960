package authz

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/dowhile/storefront-system/internal/core/domain"
)

type stubValidator struct {
	identity domain.Identity
	err      error
	tokens   []string
}

func (v *stubValidator) Validate(_ context.Context, token string) (domain.Identity, error) {
	v.tokens = append(v.tokens, token)
	if v.err != nil {
		return domain.Identity{}, v.err
	}
	return v.identity, nil
}

func newContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthenticate_InjectsIdentity(t *testing.T) {
	validator := &stubValidator{
		identity: domain.Identity{Username: "dowhile2021", Roles: []domain.Role{domain.RoleBuyer}},
	}
	c, _ := newContext("Bearer abc.def.ghi")

	called := false
	handler := Authenticate(validator)(func(c echo.Context) error {
		called = true
		identity, ok := IdentityFrom(c)
		if !ok {
			t.Fatalf("identity missing from context")
		}
		if identity.Username != "dowhile2021" {
			t.Fatalf("unexpected identity: %+v", identity)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if len(validator.tokens) != 1 || validator.tokens[0] != "abc.def.ghi" {
		t.Fatalf("bearer prefix not stripped: %v", validator.tokens)
	}
}

func TestAuthenticate_MissingToken(t *testing.T) {
	validator := &stubValidator{}
	c, _ := newContext("")

	handler := Authenticate(validator)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if len(validator.tokens) != 0 {
		t.Fatalf("validator called without a token")
	}
}

func TestAuthenticate_RejectedToken(t *testing.T) {
	validator := &stubValidator{err: domain.ErrInvalidToken}
	c, _ := newContext("Bearer bad")

	handler := Authenticate(validator)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthenticate_RawTokenWithoutScheme(t *testing.T) {
	validator := &stubValidator{identity: domain.Identity{Username: "dowhile2021"}}
	c, _ := newContext("abc.def.ghi")

	handler := Authenticate(validator)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if len(validator.tokens) != 1 || validator.tokens[0] != "abc.def.ghi" {
		t.Fatalf("raw token not forwarded verbatim: %v", validator.tokens)
	}
}

func TestRequireRole_Allows(t *testing.T) {
	c, rec := newContext("")
	c.Set("identity", domain.Identity{Username: "theadmin", Roles: []domain.Role{domain.RoleAdmin}})

	handler := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_Forbids(t *testing.T) {
	c, _ := newContext("")
	c.Set("identity", domain.Identity{Username: "dowhile2021", Roles: []domain.Role{domain.RoleBuyer}})

	handler := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequireRole_NoIdentity(t *testing.T) {
	c, _ := newContext("")

	handler := RequireRole(domain.RoleBuyer)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dowhile/storefront-system/internal/core/domain"
)

func TestErrorBodyFor_Mapping(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		code    string
		message string
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials"},
		{domain.ErrInvalidToken, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token"},
		{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN", "Access forbidden"},
		{domain.ErrNotFound, http.StatusNotFound, "RESOURCE_NOT_FOUND", "Resource not found"},
		{domain.ErrInvalidStatusTransition, http.StatusBadRequest, "INVALID_ORDER_STATUS_TRANSITION", "Illegal order status transition"},
		{errors.New("database exploded"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error"},
	}

	for _, tc := range cases {
		status, body := ErrorBodyFor(tc.err)
		if status != tc.status {
			t.Fatalf("%v: expected status %d, got %d", tc.err, tc.status, status)
		}
		if body.StatusCode != tc.status || body.Code != tc.code || body.Message != tc.message {
			t.Fatalf("%v: unexpected body %+v", tc.err, body)
		}
	}
}

func TestErrorBodyFor_WrappedError(t *testing.T) {
	wrapped := errors.Join(errors.New("lookup failed"), domain.ErrNotFound)

	status, body := ErrorBodyFor(wrapped)
	if status != http.StatusNotFound || body.Code != "RESOURCE_NOT_FOUND" {
		t.Fatalf("wrapped sentinel not recognized: %d %+v", status, body)
	}
}

func TestHTTPErrorHandler_RendersEnvelope(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.GET("/boom", func(c echo.Context) error {
		return domain.ErrInvalidToken
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var body ErrorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.StatusCode != http.StatusUnauthorized || body.Code != "INVALID_TOKEN" || body.Message != "Invalid token" {
		t.Fatalf("unexpected envelope: %+v", body)
	}
}

func TestHTTPErrorHandler_RouteNotFound(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body ErrorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Code != "RESOURCE_NOT_FOUND" {
		t.Fatalf("unexpected code: %q", body.Code)
	}
}

func TestHTTPErrorHandler_InternalHidesDetails(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("password for the database is hunter2")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var body ErrorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Message != "Internal server error" {
		t.Fatalf("internal details leaked: %q", body.Message)
	}
}

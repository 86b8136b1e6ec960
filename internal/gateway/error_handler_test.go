package gateway

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dowhile/storefront-system/internal/api"
	"github.com/dowhile/storefront-system/internal/core/domain"
	"github.com/dowhile/storefront-system/internal/gateway/client"
)

func serve(t *testing.T, err error) (*httptest.ResponseRecorder, api.ErrorBody) {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.GET("/boom", func(c echo.Context) error {
		return err
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body api.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestHTTPErrorHandler_BackendEnvelopePassesThrough(t *testing.T) {
	rec, body := serve(t, &client.APIError{
		StatusCode: http.StatusNotFound,
		Code:       domain.CodeNotFound,
		Message:    "Resource not found",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domain.CodeNotFound, body.Code)
	assert.Equal(t, "Resource not found", body.Message)
}

func TestHTTPErrorHandler_DomainErrorsStillMapped(t *testing.T) {
	rec, body := serve(t, domain.ErrForbidden)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, domain.CodeForbidden, body.Code)
}

func TestHTTPErrorHandler_UnknownErrorIsInternal(t *testing.T) {
	rec, body := serve(t, errors.New("unexpected"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, domain.CodeInternal, body.Code)
	assert.Equal(t, "Internal server error", body.Message)
}

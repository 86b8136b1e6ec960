package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dowhile/storefront-system/internal/core/domain"
)

// ErrorBody is the canonical error envelope every service and gateway
// renders: {"statusCode": 404, "code": "RESOURCE_NOT_FOUND", "message": ...}.
type ErrorBody struct {
	StatusCode int    `json:"statusCode"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

// ErrorBodyFor maps err onto its fixed status/code/message triple.
// Unrecognized errors collapse to 500 INTERNAL_SERVER_ERROR.
func ErrorBodyFor(err error) (int, ErrorBody) {
	var status int
	var message string

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, domain.ErrInvalidToken):
		status, message = http.StatusUnauthorized, "Invalid token"
	case errors.Is(err, domain.ErrForbidden):
		status, message = http.StatusForbidden, "Access forbidden"
	case errors.Is(err, domain.ErrNotFound):
		status, message = http.StatusNotFound, "Resource not found"
	case errors.Is(err, domain.ErrInvalidStatusTransition):
		status, message = http.StatusBadRequest, "Illegal order status transition"
	default:
		status, message = http.StatusInternalServerError, "Internal server error"
	}

	return status, ErrorBody{StatusCode: status, Code: domain.ErrorCode(err), Message: message}
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the domain error taxonomy to its fixed status/code pairs.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the shared ErrorBody envelope.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		// Echo's own errors (bind failures, 404 from router, etc.) keep
		// their status; the code stays inside the closed taxonomy.
		var he *echo.HTTPError
		if errors.As(err, &he) {
			body := ErrorBody{
				StatusCode: he.Code,
				Code:       codeForStatus(he.Code),
				Message:    fmt.Sprintf("%v", he.Message),
			}
			_ = c.JSON(he.Code, body)
			return
		}

		status, body := ErrorBodyFor(err)
		if status == http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("unhandled error")
		}
		_ = c.JSON(status, body)
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return domain.CodeInvalidToken
	case http.StatusForbidden:
		return domain.CodeForbidden
	case http.StatusNotFound:
		return domain.CodeNotFound
	default:
		return domain.CodeInternal
	}
}

// Package gateway wires the BFF routers: backend clients, the authorization
// gate, and the composite handlers behind a single echo server per gateway.
package gateway

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dowhile/storefront-system/internal/api"
	"github.com/dowhile/storefront-system/internal/gateway/client"
)

// NewHTTPErrorHandler extends the shared error handler with the gateway's
// extra case: errors shaped by a backend client already carry their envelope
// and pass through with the backend's status untouched.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	serviceHandler := api.NewHTTPErrorHandler(log)

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			_ = c.JSON(apiErr.StatusCode, api.ErrorBody{
				StatusCode: apiErr.StatusCode,
				Code:       apiErr.Code,
				Message:    apiErr.Message,
			})
			return
		}

		serviceHandler(err, c)
	}
}

// Package handler implements the HTTP surface of the aggregation gateways.
// Each BFF exposes a client-shaped API and fulfils it by calling the backend
// services through internal/gateway/client.
package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// defaultPageLimit is the fixed page size the gateways request from the
// backends; clients page with offset only.
const defaultPageLimit = 10

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func offsetParam(c echo.Context) int {
	offset, err := strconv.Atoi(c.QueryParam("offset"))
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dowhile/storefront-system/internal/api/metrics"
	"github.com/dowhile/storefront-system/internal/core/ports"
)

// AuthHandler exposes the credential authority over HTTP.
type AuthHandler struct {
	service ports.AuthService
}

func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type validateRequest struct {
	Token string `json:"token" validate:"required"`
}

// Login exchanges credentials for a capability token.
//
// @Summary      Authenticate and issue a capability token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  api.ErrorBody
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.service.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{Token: token})
}

// Validate verifies a token and returns the identity it encodes. This is the
// delegation endpoint the gateways call; they never decode tokens themselves.
//
// @Summary      Validate a capability token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      validateRequest  true  "Token to validate"
// @Success      200   {object}  domain.Identity
// @Failure      401   {object}  api.ErrorBody
// @Router       /api/validate [post]
func (h *AuthHandler) Validate(c echo.Context) error {
	var req validateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	identity, err := h.service.Validate(c.Request().Context(), req.Token)
	if err != nil {
		metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
		return err
	}

	metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()
	return c.JSON(http.StatusOK, identity)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dowhile/storefront-system/internal/core/domain"
	"github.com/dowhile/storefront-system/internal/core/ports"
)

// BuyerHandler exposes the buyer directory over HTTP.
type BuyerHandler struct {
	service ports.BuyerService
}

func NewBuyerHandler(service ports.BuyerService) *BuyerHandler {
	return &BuyerHandler{service: service}
}

type profileResponse struct {
	Profile *domain.Profile `json:"profile"`
}

type addressResponse struct {
	Address *domain.Address `json:"address"`
}

// GetProfile handles GET /api/buyers/:id/profile.
func (h *BuyerHandler) GetProfile(c echo.Context) error {
	profile, err := h.service.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profileResponse{Profile: profile})
}

// GetAddress handles GET /api/buyers/:id/address.
func (h *BuyerHandler) GetAddress(c echo.Context) error {
	address, err := h.service.GetAddress(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, addressResponse{Address: address})
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dowhile/storefront-system/internal/core/domain"
	"github.com/dowhile/storefront-system/internal/gateway/client"
)

// BackofficeBFF aggregates the backend services for the store operations
// console. Every operation but Login requires the ADMIN role.
type BackofficeBFF struct {
	identity *client.IdentityClient
	orders   *client.OrderClient
	catalog  *client.CatalogClient
	log      zerolog.Logger
}

func NewBackofficeBFF(
	identity *client.IdentityClient,
	orders *client.OrderClient,
	catalog *client.CatalogClient,
	log zerolog.Logger,
) *BackofficeBFF {
	return &BackofficeBFF{identity: identity, orders: orders, catalog: catalog, log: log}
}

// Login handles POST /api/login.
func (h *BackofficeBFF) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.identity.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// Orders handles GET /api/orders?offset: all orders, regardless of buyer.
func (h *BackofficeBFF) Orders(c echo.Context) error {
	page, err := h.orders.List(c.Request().Context(), offsetParam(c), defaultPageLimit, "")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Products handles GET /api/products?offset.
func (h *BackofficeBFF) Products(c echo.Context) error {
	page, err := h.catalog.List(c.Request().Context(), offsetParam(c), defaultPageLimit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// UpdateProduct handles PUT /api/products/:id. The body is a partial
// document; unknown fields and the id are discarded downstream.
func (h *BackofficeBFF) UpdateProduct(c echo.Context) error {
	fields := map[string]any{}
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	product, err := h.catalog.Update(c.Request().Context(), c.Param("id"), fields)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// AcceptOrder handles POST /api/orders/:id/accept.
func (h *BackofficeBFF) AcceptOrder(c echo.Context) error {
	return h.transition(c, domain.StatusAccepted)
}

// RejectOrder handles POST /api/orders/:id/reject.
func (h *BackofficeBFF) RejectOrder(c echo.Context) error {
	return h.transition(c, domain.StatusRejectedByStore)
}

// ShipOrder handles POST /api/orders/:id/ship.
func (h *BackofficeBFF) ShipOrder(c echo.Context) error {
	return h.transition(c, domain.StatusShipped)
}

// FailOrderShipment handles POST /api/orders/:id/fail-shipment.
func (h *BackofficeBFF) FailOrderShipment(c echo.Context) error {
	return h.transition(c, domain.StatusShippingFailed)
}

func (h *BackofficeBFF) transition(c echo.Context, target domain.OrderStatus) error {
	order, err := h.orders.ChangeStatus(c.Request().Context(), c.Param("id"), target)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

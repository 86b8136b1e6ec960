package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/dowhile/storefront-system/internal/api/metrics"
	"github.com/dowhile/storefront-system/internal/core/domain"
	"github.com/dowhile/storefront-system/internal/core/ports"
)

// OrderHandler exposes the order lifecycle over HTTP.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type addressRequest struct {
	AddressLine1 string `json:"addressLine1" validate:"required"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"    validate:"required"`
	State        string `json:"state"   validate:"required"`
	ZipCode      string `json:"zipCode" validate:"required"`
}

type orderLineRequest struct {
	ProductID string          `json:"productId" validate:"required"`
	Qty       int             `json:"qty"       validate:"required,gt=0"`
	Amount    decimal.Decimal `json:"amount"`
}

type placeOrderRequest struct {
	BuyerID         string             `json:"buyerId"         validate:"required"`
	ShippingAddress addressRequest     `json:"shippingAddress" validate:"required"`
	OrderLines      []orderLineRequest `json:"orderLines"      validate:"required,min=1,dive"`
}

type ordersResponse struct {
	Orders     []domain.Order `json:"orders"`
	NextOffset *int           `json:"nextOffset"`
}

// List handles GET /api/orders?offset&limit&buyer.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Param        offset  query     int     false  "Window start (default 0)"
// @Param        limit   query     int     false  "Window size (default 10)"
// @Param        buyer   query     string  false  "Scope to a buyer"
// @Success      200     {object}  ordersResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	offset, limit := pageParams(c)

	page, err := h.service.List(c.Request().Context(), ports.ListOrdersInput{
		BuyerID: c.QueryParam("buyer"),
		Offset:  offset,
		Limit:   limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ordersResponse{Orders: page.Items, NextOffset: page.NextOffset})
}

// Get handles GET /api/orders/:id.
//
// @Summary      Get an order by id
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  domain.Order
// @Failure      404  {object}  api.ErrorBody
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Create handles POST /api/orders.
//
// @Summary      Place a new order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      placeOrderRequest  true  "Order details"
// @Success      201   {object}  domain.Order
// @Failure      400   {object}  api.ErrorBody
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lines := make([]domain.OrderLine, len(req.OrderLines))
	for i, l := range req.OrderLines {
		lines[i] = domain.OrderLine{ProductID: l.ProductID, Qty: l.Qty, Amount: l.Amount}
	}

	order, err := h.service.Place(c.Request().Context(), ports.PlaceOrderInput{
		BuyerID: req.BuyerID,
		ShippingAddress: domain.Address{
			AddressLine1: req.ShippingAddress.AddressLine1,
			AddressLine2: req.ShippingAddress.AddressLine2,
			City:         req.ShippingAddress.City,
			State:        req.ShippingAddress.State,
			ZipCode:      req.ShippingAddress.ZipCode,
		},
		OrderLines: lines,
	})
	if err != nil {
		return err
	}

	metrics.OrdersPlacedTotal.Inc()
	return c.JSON(http.StatusCreated, order)
}

// ChangeStatus handles PUT /api/orders/:id/status/:status. The target status
// is accepted only when the state machine allows the move.
//
// @Summary      Transition an order to a new status
// @Tags         orders
// @Produce      json
// @Param        id      path      string  true  "Order id"
// @Param        status  path      string  true  "Target status"
// @Success      200     {object}  domain.Order
// @Failure      400     {object}  api.ErrorBody
// @Failure      404     {object}  api.ErrorBody
// @Router       /api/orders/{id}/status/{status} [put]
func (h *OrderHandler) ChangeStatus(c echo.Context) error {
	target := domain.OrderStatus(c.Param("status"))

	order, err := h.service.ChangeStatus(c.Request().Context(), c.Param("id"), target)
	if err != nil {
		return err
	}

	metrics.OrderTransitionsTotal.WithLabelValues(string(target)).Inc()
	return c.JSON(http.StatusOK, order)
}

package handler

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dowhile/storefront-system/internal/api/metrics"
	"github.com/dowhile/storefront-system/internal/core/domain"
	"github.com/dowhile/storefront-system/internal/gateway/authz"
	"github.com/dowhile/storefront-system/internal/gateway/client"
)

// homeProductLimit is the size of the product window on the home view.
const homeProductLimit = 5

// BuyerBFF aggregates the backend services for the buyer mobile client.
type BuyerBFF struct {
	identity *client.IdentityClient
	orders   *client.OrderClient
	catalog  *client.CatalogClient
	buyers   *client.BuyerClient
	log      zerolog.Logger
}

func NewBuyerBFF(
	identity *client.IdentityClient,
	orders *client.OrderClient,
	catalog *client.CatalogClient,
	buyers *client.BuyerClient,
	log zerolog.Logger,
) *BuyerBFF {
	return &BuyerBFF{identity: identity, orders: orders, catalog: catalog, buyers: buyers, log: log}
}

// branchError is the per-branch failure payload of a composite response.
type branchError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func toBranchError(err error) *branchError {
	shaped := client.Shape(err)
	return &branchError{Code: shaped.Code, Message: shaped.Message}
}

// Composite sub-results: each settles independently, carrying either its data
// fields or an error, never both.
type profileBranch struct {
	Profile *domain.Profile `json:"profile"`
	Error   *branchError    `json:"error"`
}

type addressBranch struct {
	Address *domain.Address `json:"address"`
	Error   *branchError    `json:"error"`
}

type productsBranch struct {
	Products   []domain.Product `json:"products"`
	NextOffset *int             `json:"nextOffset"`
	Error      *branchError     `json:"error"`
}

type homeResponse struct {
	Profile       profileBranch  `json:"profile"`
	Address       addressBranch  `json:"address"`
	FirstProducts productsBranch `json:"firstProducts"`
}

// Home handles GET /api/home: the composite read backing the buyer client's
// landing view. The three constituent calls are issued concurrently and each
// outcome is captured independently, so one failing branch never taints its
// siblings and the composite always resolves once every branch has settled.
func (h *BuyerBFF) Home(c echo.Context) error {
	identity, _ := authz.IdentityFrom(c)
	ctx := c.Request().Context()

	var resp homeResponse
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		profile, err := h.buyers.Profile(ctx, identity.Username)
		if err != nil {
			resp.Profile.Error = toBranchError(err)
			metrics.CompositeBranchesTotal.WithLabelValues("profile", "error").Inc()
			return
		}
		resp.Profile.Profile = profile
		metrics.CompositeBranchesTotal.WithLabelValues("profile", "ok").Inc()
	}()

	go func() {
		defer wg.Done()
		address, err := h.buyers.Address(ctx, identity.Username)
		if err != nil {
			resp.Address.Error = toBranchError(err)
			metrics.CompositeBranchesTotal.WithLabelValues("address", "error").Inc()
			return
		}
		resp.Address.Address = address
		metrics.CompositeBranchesTotal.WithLabelValues("address", "ok").Inc()
	}()

	go func() {
		defer wg.Done()
		page, err := h.catalog.List(ctx, 0, homeProductLimit)
		if err != nil {
			resp.FirstProducts.Error = toBranchError(err)
			metrics.CompositeBranchesTotal.WithLabelValues("firstProducts", "error").Inc()
			return
		}
		resp.FirstProducts.Products = page.Products
		resp.FirstProducts.NextOffset = page.NextOffset
		metrics.CompositeBranchesTotal.WithLabelValues("firstProducts", "ok").Inc()
	}()

	wg.Wait()
	return c.JSON(http.StatusOK, resp)
}

// Login handles POST /api/login. Login is the only ungated operation.
func (h *BuyerBFF) Login(c echo.Context) error {
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

// MyOrders handles GET /api/orders?offset: the order list scoped to the
// authenticated buyer. The scope comes from the validated identity, never
// from a request parameter.
func (h *BuyerBFF) MyOrders(c echo.Context) error {
	identity, _ := authz.IdentityFrom(c)
	offset := offsetParam(c)

	page, err := h.orders.List(c.Request().Context(), offset, defaultPageLimit, identity.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Products handles GET /api/products?offset.
func (h *BuyerBFF) Products(c echo.Context) error {
	page, err := h.catalog.List(c.Request().Context(), offsetParam(c), homeProductLimit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

type placeOrderRequest struct {
	ShippingAddress domain.Address     `json:"shippingAddress" validate:"required"`
	OrderLines      []domain.OrderLine `json:"orderLines"      validate:"required,min=1"`
}

// PlaceOrder handles POST /api/orders. The buyer id is always the
// authenticated username; a buyerId in the body is ignored.
func (h *BuyerBFF) PlaceOrder(c echo.Context) error {
	identity, _ := authz.IdentityFrom(c)

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.orders.Place(c.Request().Context(), client.PlaceOrderRequest{
		BuyerID:         identity.Username,
		ShippingAddress: req.ShippingAddress,
		OrderLines:      req.OrderLines,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, order)
}

// CancelOrder handles POST /api/orders/:id/cancel. Like placement, the
// operation is scoped to the authenticated buyer: a foreign order is
// indistinguishable from a missing one.
func (h *BuyerBFF) CancelOrder(c echo.Context) error {
	identity, _ := authz.IdentityFrom(c)
	ctx := c.Request().Context()
	id := c.Param("id")

	order, err := h.orders.Get(ctx, id)
	if err != nil {
		return err
	}
	if order.BuyerID != identity.Username {
		return domain.ErrNotFound
	}

	cancelled, err := h.orders.ChangeStatus(ctx, id, domain.StatusCancelledByBuyer)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cancelled)
}

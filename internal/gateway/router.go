package gateway

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	apihandler "github.com/dowhile/storefront-system/internal/api/handler"
	"github.com/dowhile/storefront-system/internal/core/domain"
	"github.com/dowhile/storefront-system/internal/gateway/authz"
	"github.com/dowhile/storefront-system/internal/gateway/handler"
)

// newEcho mirrors the backend services' server setup, with the gateway's
// error handler layered on top.
func newEcho(log zerolog.Logger, checks map[string]apihandler.ReadinessCheck) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = apihandler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	healthHandler := apihandler.NewHealthHandler()
	readinessHandler := apihandler.NewReadinessHandler(checks)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

// NewBackofficeRouter registers the backoffice gateway routes. Everything
// under /api except login sits behind token validation and the ADMIN gate.
func NewBackofficeRouter(h *handler.BackofficeBFF, validator authz.Validator, log zerolog.Logger, checks map[string]apihandler.ReadinessCheck) *echo.Echo {
	e := newEcho(log, checks)

	e.POST("/api/login", h.Login)

	g := e.Group("/api", authz.Authenticate(validator), authz.RequireRole(domain.RoleAdmin))
	g.GET("/orders", h.Orders)
	g.POST("/orders/:id/accept", h.AcceptOrder)
	g.POST("/orders/:id/reject", h.RejectOrder)
	g.POST("/orders/:id/ship", h.ShipOrder)
	g.POST("/orders/:id/fail-shipment", h.FailOrderShipment)
	g.GET("/products", h.Products)
	g.PUT("/products/:id", h.UpdateProduct)

	return e
}

// NewBuyerRouter registers the buyer gateway routes behind the BUYER gate.
func NewBuyerRouter(h *handler.BuyerBFF, validator authz.Validator, log zerolog.Logger, checks map[string]apihandler.ReadinessCheck) *echo.Echo {
	e := newEcho(log, checks)

	e.POST("/api/login", h.Login)

	g := e.Group("/api", authz.Authenticate(validator), authz.RequireRole(domain.RoleBuyer))
	g.GET("/home", h.Home)
	g.GET("/orders", h.MyOrders)
	g.POST("/orders", h.PlaceOrder)
	g.POST("/orders/:id/cancel", h.CancelOrder)
	g.GET("/products", h.Products)

	return e
}

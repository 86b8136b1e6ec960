package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/dowhile/storefront-system/internal/api/handler"
	"github.com/dowhile/storefront-system/internal/core/ports"
)

// newEcho builds an Echo instance with the middleware, error handling, and
// probes shared by every backend service.
func newEcho(log zerolog.Logger, checks map[string]handler.ReadinessCheck) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(checks)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

// NewIdentityRouter registers the credential authority routes.
func NewIdentityRouter(service ports.AuthService, log zerolog.Logger, checks map[string]handler.ReadinessCheck) *echo.Echo {
	e := newEcho(log, checks)

	h := handler.NewAuthHandler(service)
	e.POST("/api/login", h.Login)
	e.POST("/api/validate", h.Validate)

	return e
}

// NewOrderRouter registers the order service routes.
func NewOrderRouter(service ports.OrderService, log zerolog.Logger, checks map[string]handler.ReadinessCheck) *echo.Echo {
	e := newEcho(log, checks)

	h := handler.NewOrderHandler(service)
	e.GET("/api/orders", h.List)
	e.GET("/api/orders/:id", h.Get)
	e.POST("/api/orders", h.Create)
	e.PUT("/api/orders/:id/status/:status", h.ChangeStatus)

	return e
}

// NewCatalogRouter registers the product catalog routes.
func NewCatalogRouter(service ports.CatalogService, log zerolog.Logger, checks map[string]handler.ReadinessCheck) *echo.Echo {
	e := newEcho(log, checks)

	h := handler.NewProductHandler(service)
	e.GET("/api/products", h.List)
	e.GET("/api/products/:id", h.Get)
	e.PUT("/api/products/:id", h.Update)

	return e
}

// NewBuyerRouter registers the buyer directory routes.
func NewBuyerRouter(service ports.BuyerService, log zerolog.Logger, checks map[string]handler.ReadinessCheck) *echo.Echo {
	e := newEcho(log, checks)

	h := handler.NewBuyerHandler(service)
	e.GET("/api/buyers/:id/profile", h.GetProfile)
	e.GET("/api/buyers/:id/address", h.GetAddress)

	return e
}

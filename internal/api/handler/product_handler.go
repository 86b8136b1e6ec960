package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dowhile/storefront-system/internal/core/domain"
	"github.com/dowhile/storefront-system/internal/core/ports"
)

const (
	defaultOffset = 0
	defaultLimit  = 10
)

// pageParams reads offset/limit query parameters with the shared defaults.
func pageParams(c echo.Context) (offset, limit int) {
	offset = defaultOffset
	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil && v >= 0 {
		offset = v
	}
	limit = defaultLimit
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = v
	}
	return offset, limit
}

// ProductHandler exposes the product catalog over HTTP.
type ProductHandler struct {
	service ports.CatalogService
}

func NewProductHandler(service ports.CatalogService) *ProductHandler {
	return &ProductHandler{service: service}
}

type productsResponse struct {
	Products   []domain.Product `json:"products"`
	NextOffset *int             `json:"nextOffset"`
}

// List handles GET /api/products?offset&limit.
//
// @Summary      List catalog products
// @Tags         products
// @Produce      json
// @Param        offset  query     int  false  "Window start (default 0)"
// @Param        limit   query     int  false  "Window size (default 10)"
// @Success      200     {object}  productsResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	offset, limit := pageParams(c)

	page, err := h.service.ListProducts(c.Request().Context(), offset, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productsResponse{Products: page.Items, NextOffset: page.NextOffset})
}

// Get handles GET /api/products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  api.ErrorBody
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Update handles PUT /api/products/:id. The body is a free-form partial
// record: keys not present on the stored product are ignored and the
// identifier is never overwritten.
//
// @Summary      Partially update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Product id"
// @Param        body  body      map[string]any  true  "Fields to update"
// @Success      200   {object}  domain.Product
// @Failure      404   {object}  api.ErrorBody
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	fields := map[string]any{}
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	product, err := h.service.UpdateProduct(c.Request().Context(), c.Param("id"), fields)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dowhile/storefront-system/internal/core/domain"
	"github.com/dowhile/storefront-system/internal/gateway/client"
)

func adminContext(t *testing.T, method, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("identity", domain.Identity{Username: "theadmin", Roles: []domain.Role{domain.RoleAdmin}})
	return c, rec
}

func TestBackofficeBFF_Orders_Unscoped(t *testing.T) {
	orders := backendClient(t, "order", func(w http.ResponseWriter, r *http.Request) {
		// backoffice listings are never scoped to a buyer
		assert.Empty(t, r.URL.Query().Get("buyer"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "20", r.URL.Query().Get("offset"))
		_ = json.NewEncoder(w).Encode(client.OrdersPage{Orders: []domain.Order{{ID: "o1"}, {ID: "o2"}}})
	})

	bff := NewBackofficeBFF(nil, client.NewOrderClient(orders), nil, zerolog.Nop())
	c, rec := adminContext(t, http.MethodGet, "/api/orders?offset=20")

	require.NoError(t, bff.Orders(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBackofficeBFF_OrderTransitions(t *testing.T) {
	cases := []struct {
		name   string
		call   func(bff *BackofficeBFF, c echo.Context) error
		target domain.OrderStatus
	}{
		{"accept", func(bff *BackofficeBFF, c echo.Context) error { return bff.AcceptOrder(c) }, domain.StatusAccepted},
		{"reject", func(bff *BackofficeBFF, c echo.Context) error { return bff.RejectOrder(c) }, domain.StatusRejectedByStore},
		{"ship", func(bff *BackofficeBFF, c echo.Context) error { return bff.ShipOrder(c) }, domain.StatusShipped},
		{"fail-shipment", func(bff *BackofficeBFF, c echo.Context) error { return bff.FailOrderShipment(c) }, domain.StatusShippingFailed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			orders := backendClient(t, "order", func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/orders/o1/status/"+string(tc.target), r.URL.Path)
				_ = json.NewEncoder(w).Encode(domain.Order{ID: "o1", Status: tc.target})
			})

			bff := NewBackofficeBFF(nil, client.NewOrderClient(orders), nil, zerolog.Nop())
			c, rec := adminContext(t, http.MethodPost, "/api/orders/o1/"+tc.name)
			c.SetParamNames("id")
			c.SetParamValues("o1")

			require.NoError(t, tc.call(bff, c))
			assert.Equal(t, http.StatusOK, rec.Code)

			var order domain.Order
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
			assert.Equal(t, tc.target, order.Status)
		})
	}
}

func TestBackofficeBFF_OrderTransition_IllegalMove(t *testing.T) {
	orders := backendClient(t, "order", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusBadRequest, domain.CodeInvalidStatusTransition, "Illegal order status transition")
	})

	bff := NewBackofficeBFF(nil, client.NewOrderClient(orders), nil, zerolog.Nop())
	c, _ := adminContext(t, http.MethodPost, "/api/orders/o1/ship")
	c.SetParamNames("id")
	c.SetParamValues("o1")

	err := bff.ShipOrder(c)
	require.Error(t, err)

	apiErr := client.Shape(err)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, domain.CodeInvalidStatusTransition, apiErr.Code)
}

func TestBackofficeBFF_UpdateProduct(t *testing.T) {
	catalog := backendClient(t, "catalog", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/products/p1", r.URL.Path)

		var fields map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
		assert.Equal(t, "Fone Renomeado", fields["title"])

		_ = json.NewEncoder(w).Encode(domain.Product{ID: "p1", Title: "Fone Renomeado"})
	})

	bff := NewBackofficeBFF(nil, nil, client.NewCatalogClient(catalog), zerolog.Nop())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/products/p1", strings.NewReader(`{"title":"Fone Renomeado"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	require.NoError(t, bff.UpdateProduct(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var product domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))
	assert.Equal(t, "Fone Renomeado", product.Title)
}

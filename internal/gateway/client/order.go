package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/dowhile/storefront-system/internal/core/domain"
)

// OrderClient talks to the order service.
type OrderClient struct {
	base *Client
}

func NewOrderClient(base *Client) *OrderClient {
	return &OrderClient{base: base}
}

// OrdersPage is one window of the order list.
type OrdersPage struct {
	Orders     []domain.Order `json:"orders"`
	NextOffset *int           `json:"nextOffset"`
}

// PlaceOrderRequest is the order placement payload.
type PlaceOrderRequest struct {
	BuyerID         string             `json:"buyerId"`
	ShippingAddress domain.Address     `json:"shippingAddress"`
	OrderLines      []domain.OrderLine `json:"orderLines"`
}

// List fetches one page of orders, scoped to buyer when non-empty.
func (c *OrderClient) List(ctx context.Context, offset, limit int, buyer string) (*OrdersPage, error) {
	query := url.Values{}
	query.Set("offset", strconv.Itoa(offset))
	query.Set("limit", strconv.Itoa(limit))
	if buyer != "" {
		query.Set("buyer", buyer)
	}

	var page OrdersPage
	if err := c.base.get(ctx, "/orders", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get fetches a single order.
func (c *OrderClient) Get(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	if err := c.base.get(ctx, "/orders/"+url.PathEscape(id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Place creates a new order.
func (c *OrderClient) Place(ctx context.Context, req PlaceOrderRequest) (*domain.Order, error) {
	var order domain.Order
	if err := c.base.post(ctx, "/orders", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ChangeStatus transitions an order to the target status.
func (c *OrderClient) ChangeStatus(ctx context.Context, id string, target domain.OrderStatus) (*domain.Order, error) {
	var order domain.Order
	path := "/orders/" + url.PathEscape(id) + "/status/" + url.PathEscape(string(target))
	if err := c.base.put(ctx, path, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

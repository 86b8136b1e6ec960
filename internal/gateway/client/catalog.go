package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/dowhile/storefront-system/internal/core/domain"
)

// CatalogClient talks to the product catalog service.
type CatalogClient struct {
	base *Client
}

func NewCatalogClient(base *Client) *CatalogClient {
	return &CatalogClient{base: base}
}

// ProductsPage is one window of the product list.
type ProductsPage struct {
	Products   []domain.Product `json:"products"`
	NextOffset *int             `json:"nextOffset"`
}

// List fetches one page of products.
func (c *CatalogClient) List(ctx context.Context, offset, limit int) (*ProductsPage, error) {
	query := url.Values{}
	query.Set("offset", strconv.Itoa(offset))
	query.Set("limit", strconv.Itoa(limit))

	var page ProductsPage
	if err := c.base.get(ctx, "/products", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get fetches a single product.
func (c *CatalogClient) Get(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	if err := c.base.get(ctx, "/products/"+url.PathEscape(id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update applies a partial update to a product.
func (c *CatalogClient) Update(ctx context.Context, id string, fields map[string]any) (*domain.Product, error) {
	var product domain.Product
	if err := c.base.put(ctx, "/products/"+url.PathEscape(id), fields, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

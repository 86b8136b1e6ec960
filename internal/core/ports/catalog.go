package ports

import (
	"context"

	"github.com/dowhile/storefront-system/internal/core/domain"
)

// ProductRepository defines persistence operations for catalog products.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Save(ctx context.Context, product *domain.Product) error
}

// CatalogService defines the product catalog use cases.
type CatalogService interface {
	ListProducts(ctx context.Context, offset, limit int) (domain.Page[domain.Product], error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	// UpdateProduct applies a partial update; unknown fields are ignored and
	// the identifier is never overwritten.
	UpdateProduct(ctx context.Context, id string, fields map[string]any) (*domain.Product, error)
}

package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dowhile/storefront-system/internal/core/domain"
	"github.com/dowhile/storefront-system/internal/core/ports"
)

// CatalogService exposes the product catalog use cases.
type CatalogService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
}

func NewCatalogService(repo ports.ProductRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, log: log}
}

func (s *CatalogService) ListProducts(ctx context.Context, offset, limit int) (domain.Page[domain.Product], error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return domain.Page[domain.Product]{}, err
	}
	return domain.Paginate(offset, limit, products), nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateProduct applies a field-level partial update. Keys not present on the
// stored record are ignored and the identifier is never overwritten, so a
// request body carrying "id" has no effect on it.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, fields map[string]any) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.ApplyUpdate(fields)
	if err := s.repo.Save(ctx, product); err != nil {
		s.log.Error().Err(err).Str("product_id", id).Msg("failed to save product")
		return nil, err
	}

	s.log.Info().Str("product_id", id).Msg("product updated")
	return product, nil
}

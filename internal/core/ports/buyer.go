package ports

import (
	"context"

	"github.com/dowhile/storefront-system/internal/core/domain"
)

// BuyerRepository defines lookups over the buyer directory.
type BuyerRepository interface {
	FindProfile(ctx context.Context, username string) (*domain.Profile, error)
	FindAddress(ctx context.Context, username string) (*domain.Address, error)
}

// BuyerService defines the buyer directory use cases.
type BuyerService interface {
	GetProfile(ctx context.Context, username string) (*domain.Profile, error)
	GetAddress(ctx context.Context, username string) (*domain.Address, error)
}

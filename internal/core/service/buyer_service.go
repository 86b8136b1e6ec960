package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dowhile/storefront-system/internal/core/domain"
	"github.com/dowhile/storefront-system/internal/core/ports"
)

// BuyerDirectoryService resolves buyer profile and address records.
type BuyerDirectoryService struct {
	repo ports.BuyerRepository
	log  zerolog.Logger
}

func NewBuyerDirectoryService(repo ports.BuyerRepository, log zerolog.Logger) *BuyerDirectoryService {
	return &BuyerDirectoryService{repo: repo, log: log}
}

func (s *BuyerDirectoryService) GetProfile(ctx context.Context, username string) (*domain.Profile, error) {
	return s.repo.FindProfile(ctx, username)
}

func (s *BuyerDirectoryService) GetAddress(ctx context.Context, username string) (*domain.Address, error) {
	return s.repo.FindAddress(ctx, username)
}

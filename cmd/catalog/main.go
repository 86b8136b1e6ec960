package main

import (
	"context"

	"github.com/dowhile/storefront-system/internal/api"
	"github.com/dowhile/storefront-system/internal/api/handler"
	"github.com/dowhile/storefront-system/internal/core/service"
	"github.com/dowhile/storefront-system/internal/infrastructure/config"
	"github.com/dowhile/storefront-system/internal/infrastructure/memstore"
	"github.com/dowhile/storefront-system/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load[config.Catalog](ctx)
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg.LogLevel, cfg.Env == "development")

	products := memstore.NewProductStore(memstore.FixtureProducts()...)
	svc := service.NewCatalogService(products, log)
	e := api.NewCatalogRouter(svc, log, map[string]handler.ReadinessCheck{})

	if err := api.Start(e, cfg.Port, log); err != nil {
		log.Fatal().Err(err).Msg("shutdown failed")
	}
}

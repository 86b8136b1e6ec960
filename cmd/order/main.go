package main

import (
	"context"

	"github.com/dowhile/storefront-system/internal/api"
	"github.com/dowhile/storefront-system/internal/api/handler"
	"github.com/dowhile/storefront-system/internal/core/ports"
	"github.com/dowhile/storefront-system/internal/core/service"
	"github.com/dowhile/storefront-system/internal/infrastructure/config"
	mongostore "github.com/dowhile/storefront-system/internal/infrastructure/db/mongo"
	"github.com/dowhile/storefront-system/internal/infrastructure/memstore"
	"github.com/dowhile/storefront-system/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load[config.Order](ctx)
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg.LogLevel, cfg.Env == "development")

	var orders ports.OrderRepository
	checks := map[string]handler.ReadinessCheck{}

	if cfg.Mongo.URI != "" {
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() { _ = client.Disconnect(ctx) }()

		orders = mongostore.NewOrderStore(db)
		checks["mongo"] = func(ctx context.Context) error { return client.Ping(ctx, nil) }
		log.Info().Str("database", cfg.Mongo.Database).Msg("using mongo order store")
	} else {
		orders = memstore.NewOrderStore(memstore.FixtureOrders()...)
		log.Info().Msg("using in-memory order store")
	}

	svc := service.NewOrderService(orders, log)
	e := api.NewOrderRouter(svc, log, checks)

	if err := api.Start(e, cfg.Port, log); err != nil {
		log.Fatal().Err(err).Msg("shutdown failed")
	}
}

package main

import (
	"context"

	"github.com/dowhile/storefront-system/internal/api"
	apihandler "github.com/dowhile/storefront-system/internal/api/handler"
	"github.com/dowhile/storefront-system/internal/gateway"
	"github.com/dowhile/storefront-system/internal/gateway/client"
	"github.com/dowhile/storefront-system/internal/gateway/handler"
	"github.com/dowhile/storefront-system/internal/infrastructure/config"
	redisstore "github.com/dowhile/storefront-system/internal/infrastructure/db/redis"
	"github.com/dowhile/storefront-system/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load[config.Gateway](ctx)
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg.LogLevel, cfg.Env == "development")

	var cache client.TokenCache
	checks := map[string]apihandler.ReadinessCheck{}
	if cfg.Redis.Addr != "" {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() { _ = rdb.Close() }()

		cache = redisstore.NewTokenCache(rdb)
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		log.Info().Str("addr", cfg.Redis.Addr).Msg("token validation cache enabled")
	}

	identity := client.NewIdentityClient(client.New(cfg.IdentityURL, "identity", cfg.BackendTimeout, log), cache)
	orders := client.NewOrderClient(client.New(cfg.OrderURL, "order", cfg.BackendTimeout, log))
	catalog := client.NewCatalogClient(client.New(cfg.CatalogURL, "catalog", cfg.BackendTimeout, log))
	buyers := client.NewBuyerClient(client.New(cfg.BuyerURL, "buyer", cfg.BackendTimeout, log))

	bff := handler.NewBuyerBFF(identity, orders, catalog, buyers, log)
	e := gateway.NewBuyerRouter(bff, identity, log, checks)

	if err := api.Start(e, cfg.Port, log); err != nil {
		log.Fatal().Err(err).Msg("shutdown failed")
	}
}

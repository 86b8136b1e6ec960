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
	"github.com/dowhile/storefront-system/internal/infrastructure/token"
	"github.com/dowhile/storefront-system/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load[config.Identity](ctx)
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg.LogLevel, cfg.Env == "development")

	private, err := token.LoadPrivateKey(cfg.PrivateKeyPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.PrivateKeyPath).Msg("loading signing key failed")
	}
	public, err := token.LoadPublicKey(cfg.PublicKeyPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.PublicKeyPath).Msg("loading verification key failed")
	}
	jwt := token.NewJWT(private, public, cfg.TokenTTL)

	var users ports.UserRepository
	checks := map[string]handler.ReadinessCheck{}

	if cfg.Mongo.URI != "" {
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() { _ = client.Disconnect(ctx) }()

		store := mongostore.NewUserStore(db)
		if err := store.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("ensuring user indexes failed")
		}
		if err := store.Seed(ctx, memstore.FixtureUsers()); err != nil {
			log.Fatal().Err(err).Msg("seeding users failed")
		}
		users = store
		checks["mongo"] = func(ctx context.Context) error { return client.Ping(ctx, nil) }
		log.Info().Str("database", cfg.Mongo.Database).Msg("using mongo user store")
	} else {
		users = memstore.NewUserStore(memstore.FixtureUsers()...)
		log.Info().Msg("using in-memory user store")
	}

	svc := service.NewAuthService(users, jwt, jwt, log)
	e := api.NewIdentityRouter(svc, log, checks)

	if err := api.Start(e, cfg.Port, log); err != nil {
		log.Fatal().Err(err).Msg("shutdown failed")
	}
}

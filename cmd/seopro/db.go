package main

import (
	"context"
	"fmt"
	"time"

	"seopro/internal/cache"
	"seopro/internal/config"
	"seopro/internal/store"
	"seopro/internal/store/postgres"
	"seopro/internal/store/sqlite"
)

func openStore(ctx context.Context, cfg *config.SeoConfig) (store.Store, error) {
	var (
		db  store.Store
		err error
	)
	switch cfg.Database.Driver {
	case "postgres":
		db, err = postgres.New(ctx, cfg.Database.DSN)
	case "", "sqlite":
		db, err = sqlite.New(ctx, cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
	if err != nil {
		return nil, err
	}
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close(ctx)
		return nil, err
	}
	return db, nil
}

func openCache(ctx context.Context, cfg *config.SeoConfig) (cache.Cache, error) {
	switch cfg.Cache.Backend {
	case "redis":
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		return cache.NewRedis(ctx, cfg.Cache.RedisAddr, "", 0)
	default:
		return cache.NewMemory(), nil
	}
}

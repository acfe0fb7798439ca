package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"hallbook/internal/config"
)

// OpenBackend builds the backend selected by cfg.Backend
func OpenBackend(ctx context.Context, cfg config.StoreConfig, dataDir string) (Backend, error) {
	switch cfg.Backend {
	case "", "file":
		return NewFileBackend(dataDir), nil
	case "memory":
		return NewMemoryBackend(), nil
	case "sqlite":
		return NewSQLiteBackend(ctx, cfg.SQLitePath)
	case "redis":
		return NewRedisBackend(ctx, &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, cfg.RedisPrefix)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

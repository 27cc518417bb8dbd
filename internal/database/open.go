package database

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/lanes/internal/config"
)

// Open builds the KeyValueStore selected by cfg.Driver
func Open(ctx context.Context, cfg config.StorageConfig) (KeyValueStore, error) {
	switch cfg.Driver {
	case config.DriverSQLite, "":
		return OpenSQLiteStore(ctx, cfg.Path)
	case config.DriverFile:
		return NewFileStore(cfg.Path)
	case config.DriverRedis:
		return NewRedisStore(ctx, RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
	case config.DriverMemory:
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}

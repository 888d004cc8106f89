package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"arogya-ai/internal/config"
	"arogya-ai/internal/repository"
)

// NewKVStore abre el store elegido por STORE_DRIVER.
// El closer devuelto libera conexiones y nunca es nil.
func NewKVStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.KVStore, func(), error) {
	noop := func() {}

	switch cfg.StoreDriver {
	case "", config.StoreDriverMemory:
		logger.Info("using in-memory store")
		return repository.NewMemoryKVStore(), noop, nil

	case config.StoreDriverSQLite:
		store, err := repository.NewSQLiteKVStore(cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("using sqlite store", zap.String("path", cfg.SQLitePath))
		return store, func() { _ = store.Close() }, nil

	case config.StoreDriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, noop, errors.New("DATABASE_URL is required for postgres store")
		}
		pool, err := NewPool(ctx, cfg)
		if err != nil {
			return nil, noop, fmt.Errorf("db connect: %w", err)
		}
		if err := Ping(ctx, pool); err != nil {
			pool.Close()
			return nil, noop, fmt.Errorf("db ping: %w", err)
		}
		store := repository.NewPgKVStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, noop, fmt.Errorf("ensure kv schema: %w", err)
		}
		logger.Info("using postgres store")
		return store, pool.Close, nil

	case config.StoreDriverRedis:
		if cfg.RedisAddr == "" {
			return nil, noop, errors.New("REDIS_ADDR is required for redis store")
		}
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := client.Ping(ctxPing).Err(); err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("redis ping: %w", err)
		}
		logger.Info("using redis store", zap.String("addr", cfg.RedisAddr))
		return repository.NewRedisKVStore(client), func() { _ = client.Close() }, nil
	}

	return nil, noop, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

package kvstore

import (
	"context"

	"refuge/config"
	domainerrors "refuge/internal/domain/errors"
	"refuge/internal/errors"

	"github.com/redis/go-redis/v9"
)

const redisService = "redis"

// Redis persists values in a Redis database, for development setups that
// share one favorites list between several running clients.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis creates a store from the favorites configuration. It does not connect.
func NewRedis(cfg *config.FavoritesConfig) *Redis {
	return NewRedisWithClient(redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}), cfg.Redis.Prefix)
}

// NewRedisWithClient wraps an existing client.
func NewRedisWithClient(client *redis.Client, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) key(key string) string {
	return r.prefix + key
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, domainerrors.NewBackingServiceError(redisService, "get "+key, err)
	}

	return value, true, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return domainerrors.NewBackingServiceError(redisService, "set "+key, err)
	}

	return nil
}

// Ping checks the server is reachable.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the client.
func (r *Redis) Close() error {
	return r.client.Close()
}

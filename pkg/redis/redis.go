package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss is returned by Get when the key does not exist.
var ErrCacheMiss = errors.New("redis: cache miss")

// Config holds Redis connection settings
type Config struct {
	Addr     string
	Password string
	DB       int
}

// IRedis is the key/value surface the service uses.
type IRedis interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	Incr(ctx context.Context, key string) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}

type redisImpl struct {
	rdb *redis.Client
}

// Connect creates a client and checks the server answers PING.
func Connect(ctx context.Context, cfg Config) (IRedis, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis: address is required")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}

	return &redisImpl{rdb: rdb}, nil
}

func (r *redisImpl) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	return b, err
}

func (r *redisImpl) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.rdb.Set(ctx, key, value, ttl).Err()
}

func (r *redisImpl) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.rdb.Del(ctx, keys...).Err()
}

func (r *redisImpl) Incr(ctx context.Context, key string) (int64, error) {
	return r.rdb.Incr(ctx, key).Result()
}

func (r *redisImpl) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

func (r *redisImpl) Close() error {
	return r.rdb.Close()
}

package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RedisStore is the Redis-backed cache store used in deployment
type RedisStore struct {
	client *redis.Client
	logger *logrus.Logger
}

// NewRedisStore creates a Redis-backed store. An unreachable Redis is only
// logged: the service keeps running uncached until the store comes back.
func NewRedisStore(addr string, logger *logrus.Logger) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:       addr,
		MaxRetries: 3,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.WithError(err).WithField("addr", addr).Warn("Redis unreachable, running uncached until it recovers")
	} else {
		logger.WithField("addr", addr).Info("Connected to Redis")
	}

	return &RedisStore{
		client: client,
		logger: logger,
	}
}

// Get returns the cached value for key, treating every Redis error as a miss
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("Cache get failed")
		return nil, false
	}
	return data, true
}

// Set stores value under key with the given TTL, swallowing errors
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("Cache set failed")
	}
}

// Close releases the underlying Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}

package repository

import (
	"context"
	"time"

	"lexiquiz/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisDocumentStore implements the domain.DocumentStore port on Redis.
// Documents are whole-value strings keyed directly; the ttl argument becomes
// the Redis key expiry.
type RedisDocumentStore struct {
	client *redis.Client
}

// NewRedisDocumentStore creates a new store over a connected *redis.Client.
func NewRedisDocumentStore(client *redis.Client) domain.DocumentStore {
	return &RedisDocumentStore{client: client}
}

// Get retrieves a document. redis.Nil translates to domain.ErrDocumentNotFound.
func (r *RedisDocumentStore) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", domain.ErrDocumentNotFound
		}
		return "", err
	}
	return val, nil
}

// Set writes a document, replacing any existing one.
func (r *RedisDocumentStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

// Ping checks the health of the Redis server.
func (r *RedisDocumentStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

var _ domain.DocumentStore = (*RedisDocumentStore)(nil)

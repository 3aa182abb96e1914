package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"oba/pkg/platform/sentinel"
)

const consentDataKeyPrefix = "oba:consent-data:"

// RedisStore keeps blobs in Redis with a TTL so abandoned sessions expire.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore constructs a Redis-backed store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Put(ctx context.Context, encryptedID, blob string) error {
	if err := s.client.Set(ctx, consentDataKeyPrefix+encryptedID, blob, s.ttl).Err(); err != nil {
		return fmt.Errorf("put consent data: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, encryptedID string) (string, error) {
	blob, err := s.client.Get(ctx, consentDataKeyPrefix+encryptedID).Result()
	if errors.Is(err, redis.Nil) {
		return "", sentinel.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get consent data: %w", err)
	}
	return blob, nil
}

// Delete removes several sessions in one pipeline.
func (s *RedisStore) Delete(ctx context.Context, encryptedIDs ...string) error {
	if len(encryptedIDs) == 0 {
		return nil
	}
	pipe := s.client.Pipeline()
	for _, id := range encryptedIDs {
		pipe.Del(ctx, consentDataKeyPrefix+id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete consent data: %w", err)
	}
	return nil
}

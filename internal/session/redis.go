package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "portfolio:session:" // portfolio:session:{token} -> "1"

// RedisStore keeps session flags in Redis with a TTL. The value is a single
// boolean flag, so concurrent logins/logouts for the same client are benign
// (last write wins).
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a session store over the given Redis client.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

var _ Store = (*RedisStore)(nil)

func (s *RedisStore) Create(ctx context.Context) (string, error) {
	token := uuid.New().String()
	if err := s.client.Set(ctx, s.key(token), "1", s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return token, nil
}

func (s *RedisStore) Valid(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	v, err := s.client.Get(ctx, s.key(token)).Result()
	if err != nil {
		// redis.Nil (expired or never created) and transport errors both
		// leave the caller anonymous.
		return false
	}
	return v == "1"
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

func (s *RedisStore) key(token string) string {
	return sessionKeyPrefix + token
}

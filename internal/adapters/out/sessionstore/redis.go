package sessionstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "moving:session"

// RedisStore implements ports.SessionStore on Redis strings with a sliding TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, token kernel.UUID) (ports.SessionState, error) {
	payload, err := s.client.GetEx(ctx, key(token), s.ttl).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.SessionState{}, ports.ErrSessionNotFound
	}
	if err != nil {
		return ports.SessionState{}, err
	}

	state, err := decode(payload)
	if err != nil {
		return ports.SessionState{}, fmt.Errorf("decode session %s: %w", token, err)
	}
	return state, nil
}

func (s *RedisStore) Save(ctx context.Context, token kernel.UUID, state ports.SessionState) error {
	payload, err := encode(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key(token), payload, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, token kernel.UUID) error {
	return s.client.Del(ctx, key(token)).Err()
}

// Ping reports whether Redis is reachable.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func key(token kernel.UUID) string {
	return fmt.Sprintf("%s:%s", keyPrefix, token)
}

package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jpsalviano/todolists/internal/domain/repository"
)

// TokenStore implements repository.TokenStore on Redis. Expiry is
// delegated entirely to Redis key TTLs.
type TokenStore struct {
	rdb *redis.Client
}

func NewTokenStore(rdb *redis.Client) *TokenStore {
	return &TokenStore{rdb: rdb}
}

func (s *TokenStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.rdb.Set(ctx, key, value, ttl).Err()
}

func (s *TokenStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (s *TokenStore) Del(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}

var _ repository.TokenStore = (*TokenStore)(nil)

package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shopease/console-gateway/internal/core/domain"
)

// Persisted keys for the operator's credential pair. They survive gateway
// restarts; lifecycle is tied to login and logout.
const (
	keyToken        = "console:token"
	keyRefreshToken = "console:refreshToken"
)

// TokenStore is the Redis-backed durable store for the access/refresh token
// pair. All writes go through a transactional pipeline so the two keys move
// together: a partial write or partial clear is a correctness bug, not a
// degraded state.
type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// Save writes both keys in one MULTI/EXEC round trip.
func (s *TokenStore) Save(ctx context.Context, token, refreshToken string) error {
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, keyToken, token, 0)
	pipe.Set(ctx, keyRefreshToken, refreshToken, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save token pair: %w", err)
	}
	return nil
}

// Load returns the stored pair. A missing access token means the operator is
// logged out: domain.ErrTokenMissing, not an infrastructure error. A refresh
// token without an access token is a torn write from a crashed process; it is
// treated as missing.
func (s *TokenStore) Load(ctx context.Context) (string, string, error) {
	vals, err := s.client.MGet(ctx, keyToken, keyRefreshToken).Result()
	if err != nil {
		return "", "", fmt.Errorf("load token pair: %w", err)
	}

	token, ok := vals[0].(string)
	if !ok || token == "" {
		return "", "", domain.ErrTokenMissing
	}
	refresh, _ := vals[1].(string)
	return token, refresh, nil
}

// Clear removes both keys in a single DEL. Clearing an empty store succeeds.
func (s *TokenStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, keyToken, keyRefreshToken).Err(); err != nil {
		return fmt.Errorf("clear token pair: %w", err)
	}
	return nil
}

package auth

import (
	"context"
	"time"

	"foodtime/internal/cache"
)

const blacklistKeyPrefix = "blacklist:access_token:"

// TokenStore tracks revoked access tokens by jti.
type TokenStore interface {
	Blacklist(ctx context.Context, tokenID string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, tokenID string) (bool, error)
}

type redisTokenStore struct {
	cache *cache.Client
}

// NewTokenStore keeps the blacklist in redis. Entries expire with the token.
func NewTokenStore(c *cache.Client) TokenStore {
	return &redisTokenStore{cache: c}
}

func (s *redisTokenStore) Blacklist(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" || ttl <= 0 {
		return nil
	}
	return s.cache.Set(ctx, blacklistKeyPrefix+tokenID, []byte("1"), ttl)
}

func (s *redisTokenStore) IsBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	data, err := s.cache.Get(ctx, blacklistKeyPrefix+tokenID)
	if err != nil {
		return false, nil
	}
	return data != nil, nil
}

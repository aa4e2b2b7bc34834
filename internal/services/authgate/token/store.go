// Package token stores opaque token-to-identity mappings in Redis.
//
// The store is the sole source of truth for token validity inside authgate:
// an entry that is absent is invalid, whether it expired or never existed.
// Expiry is enforced entirely by Redis TTL eviction.
package token

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/northreach/authgate/internal/platform/errors"
	"github.com/northreach/authgate/internal/platform/timeouts"
)

const (
	accessPrefix  = "token:"
	refreshPrefix = "refresh:"

	// RefreshTokenTTL is fixed regardless of the provider-reported
	// access-token lifetime.
	RefreshTokenTTL = 30 * 24 * time.Hour
)

// Config holds Redis connection parameters.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// Store maps opaque access and refresh tokens to user ids with TTLs.
type Store struct {
	client *redis.Client
}

// Open connects to Redis and verifies the connection before returning.
// A store that cannot reach Redis must not be used to serve requests.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.StoreOp)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, apperrors.Wrap(apperrors.CodeStoreFailure, "connect to token store", err)
	}
	return &Store{client: client}, nil
}

// NewWithClient wraps an existing Redis client. The caller keeps ownership
// of the connection lifecycle.
func NewWithClient(client *redis.Client) *Store {
	return &Store{client: client}
}

// StoreTokens writes both token mappings for a user. The access entry
// carries the provider-reported TTL; the refresh entry carries the fixed
// 30-day TTL. Existing entries under the same keys are overwritten.
func (s *Store) StoreTokens(ctx context.Context, userID, accessToken, refreshToken string, accessTTL time.Duration) error {
	opCtx, cancel := context.WithTimeout(ctx, timeouts.StoreOp)
	defer cancel()

	if err := s.client.Set(opCtx, accessPrefix+accessToken, userID, accessTTL).Err(); err != nil {
		return apperrors.Wrap(apperrors.CodeStoreFailure, "store access token", err)
	}
	if err := s.client.Set(opCtx, refreshPrefix+refreshToken, userID, RefreshTokenTTL).Err(); err != nil {
		return apperrors.Wrap(apperrors.CodeStoreFailure, "store refresh token", err)
	}
	return nil
}

// ValidateAccessToken resolves an access token to its user id. The second
// return value is false when the token is unknown or expired; the two cases
// are indistinguishable.
func (s *Store) ValidateAccessToken(ctx context.Context, accessToken string) (string, bool, error) {
	return s.lookup(ctx, accessPrefix+accessToken)
}

// ValidateRefreshToken resolves a refresh token to its user id.
func (s *Store) ValidateRefreshToken(ctx context.Context, refreshToken string) (string, bool, error) {
	return s.lookup(ctx, refreshPrefix+refreshToken)
}

func (s *Store) lookup(ctx context.Context, key string) (string, bool, error) {
	opCtx, cancel := context.WithTimeout(ctx, timeouts.StoreOp)
	defer cancel()

	userID, err := s.client.Get(opCtx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, apperrors.Wrap(apperrors.CodeStoreFailure, "look up token", err)
	}
	return userID, true, nil
}

// RevokeTokens deletes both token mappings. Deleting absent keys is not an
// error, so revocation is idempotent.
func (s *Store) RevokeTokens(ctx context.Context, accessToken, refreshToken string) error {
	opCtx, cancel := context.WithTimeout(ctx, timeouts.StoreOp)
	defer cancel()

	if err := s.client.Del(opCtx, accessPrefix+accessToken, refreshPrefix+refreshToken).Err(); err != nil {
		return apperrors.Wrap(apperrors.CodeStoreFailure, "revoke tokens", err)
	}
	return nil
}

// Close releases the Redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}

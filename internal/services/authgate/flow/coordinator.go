// Package flow orchestrates the delegated-authentication flows: login-URL
// issuance, authorization-code callback, token refresh, profile lookup, and
// sign-out. Each operation is stateless given the token store; the
// coordinator owns the mapping from flow step to provider calls and store
// operations, and the translation of failures into domain error codes.
package flow

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	apperrors "github.com/northreach/authgate/internal/platform/errors"
	"github.com/northreach/authgate/internal/services/authgate/provider"
)

// TokenStore is the store surface the coordinator needs.
type TokenStore interface {
	StoreTokens(ctx context.Context, userID, accessToken, refreshToken string, accessTTL time.Duration) error
	ValidateAccessToken(ctx context.Context, accessToken string) (string, bool, error)
	ValidateRefreshToken(ctx context.Context, refreshToken string) (string, bool, error)
	RevokeTokens(ctx context.Context, accessToken, refreshToken string) error
}

// ProviderClient is the identity-provider surface the coordinator needs.
type ProviderClient interface {
	AuthorizeURL(state string) string
	Exchange(ctx context.Context, code string) (provider.Token, error)
	Refresh(ctx context.Context, refreshToken string) (provider.Token, error)
	FetchProfile(ctx context.Context, accessToken string) (provider.Profile, error)
}

// Session is the result of a successful callback exchange.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	Profile      provider.Profile
}

// TokenPair is the result of a successful refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Coordinator composes the token store and the provider client.
type Coordinator struct {
	store    TokenStore
	provider ProviderClient
	clock    func() time.Time
	newState func() string

	// Concurrent refreshes of the same refresh token share one provider
	// call and one store write, so a raced refresh cannot issue two
	// diverging token pairs.
	refreshGroup singleflight.Group
}

// New builds a coordinator with the default clock and state generator.
func New(store TokenStore, providerClient ProviderClient) *Coordinator {
	return &Coordinator{
		store:    store,
		provider: providerClient,
		clock:    time.Now,
		newState: uuid.NewString,
	}
}

// LoginURL returns the provider authorization URL for a login attempt.
// An empty caller state is replaced by a fresh random one.
func (c *Coordinator) LoginURL(state string) string {
	if strings.TrimSpace(state) == "" {
		state = c.newState()
	}
	return c.provider.AuthorizeURL(state)
}

// Callback exchanges an authorization code for tokens, fetches the profile
// for the new access token, and persists both token mappings under the
// provider-reported user id. Nothing is written when any step fails.
func (c *Coordinator) Callback(ctx context.Context, code string) (Session, error) {
	token, err := c.provider.Exchange(ctx, code)
	if err != nil {
		return Session{}, providerFailure("token exchange failed", err)
	}

	profile, err := c.provider.FetchProfile(ctx, token.AccessToken)
	if err != nil {
		return Session{}, providerFailure("profile fetch failed", err)
	}

	accessTTL := time.Duration(token.ExpiresIn) * time.Second
	if err := c.store.StoreTokens(ctx, profile.ID, token.AccessToken, token.RefreshToken, accessTTL); err != nil {
		return Session{}, err
	}

	return Session{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    c.clock().UTC().Add(accessTTL),
		Profile:      profile,
	}, nil
}

// Refresh validates a refresh token against the store and mints a new token
// pair from the provider. The new pair stays mapped to the user id the old
// refresh token represented; the provider's refresh response carries no
// identity. The provider is never called for a token the store does not
// know.
func (c *Coordinator) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	userID, ok, err := c.store.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		return TokenPair{}, err
	}
	if !ok {
		return TokenPair{}, apperrors.New(apperrors.CodeTokenInvalid, "invalid or expired refresh token")
	}

	result, err, _ := c.refreshGroup.Do(refreshToken, func() (any, error) {
		token, err := c.provider.Refresh(ctx, refreshToken)
		if err != nil {
			return nil, providerFailure("token refresh failed", err)
		}

		// The provider omits the refresh token when the old one stays valid.
		newRefreshToken := token.RefreshToken
		if newRefreshToken == "" {
			newRefreshToken = refreshToken
		}

		accessTTL := time.Duration(token.ExpiresIn) * time.Second
		if err := c.store.StoreTokens(ctx, userID, token.AccessToken, newRefreshToken, accessTTL); err != nil {
			return nil, err
		}

		return TokenPair{
			AccessToken:  token.AccessToken,
			RefreshToken: newRefreshToken,
			ExpiresAt:    c.clock().UTC().Add(accessTTL),
		}, nil
	})
	if err != nil {
		return TokenPair{}, err
	}
	return result.(TokenPair), nil
}

// ProfileByToken resolves an access token to the provider profile. The
// store lookup runs first to reject already-known-invalid tokens without a
// provider call; the provider then has the final say on token liveness.
func (c *Coordinator) ProfileByToken(ctx context.Context, accessToken string) (provider.Profile, error) {
	_, ok, err := c.store.ValidateAccessToken(ctx, accessToken)
	if err != nil {
		return provider.Profile{}, err
	}
	if !ok {
		return provider.Profile{}, apperrors.New(apperrors.CodeTokenInvalid, "invalid or expired access token")
	}

	profile, err := c.provider.FetchProfile(ctx, accessToken)
	if err != nil {
		var providerErr *provider.Error
		if errors.As(err, &providerErr) {
			// The provider rejected the token even though the store still
			// holds it; treat the token as invalid.
			return provider.Profile{}, apperrors.Wrap(apperrors.CodeTokenInvalid, "invalid or expired access token", err)
		}
		return provider.Profile{}, providerFailure("profile fetch failed", err)
	}
	return profile, nil
}

// SignOut revokes both tokens. Unknown tokens revoke cleanly.
func (c *Coordinator) SignOut(ctx context.Context, accessToken, refreshToken string) error {
	return c.store.RevokeTokens(ctx, accessToken, refreshToken)
}

// providerFailure folds a provider call failure into a domain error whose
// message carries the provider-reported reason when there is one.
func providerFailure(message string, err error) error {
	var providerErr *provider.Error
	if errors.As(err, &providerErr) && providerErr.Reason != "" {
		return apperrors.Wrap(apperrors.CodeProviderFailure, message+": "+providerErr.Reason, err)
	}
	return apperrors.Wrap(apperrors.CodeProviderFailure, message, err)
}

package authenticate

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	authenticatev1 "github.com/northreach/authgate/api/gen/go/authenticate/v1"
	"github.com/northreach/authgate/internal/services/authgate/flow"
	"github.com/northreach/authgate/internal/services/authgate/provider"
)

type stubStore struct {
	access  map[string]string
	refresh map[string]string
}

func newStubStore() *stubStore {
	return &stubStore{
		access:  make(map[string]string),
		refresh: make(map[string]string),
	}
}

func (s *stubStore) StoreTokens(_ context.Context, userID, accessToken, refreshToken string, _ time.Duration) error {
	s.access[accessToken] = userID
	s.refresh[refreshToken] = userID
	return nil
}

func (s *stubStore) ValidateAccessToken(_ context.Context, accessToken string) (string, bool, error) {
	userID, ok := s.access[accessToken]
	return userID, ok, nil
}

func (s *stubStore) ValidateRefreshToken(_ context.Context, refreshToken string) (string, bool, error) {
	userID, ok := s.refresh[refreshToken]
	return userID, ok, nil
}

func (s *stubStore) RevokeTokens(_ context.Context, accessToken, refreshToken string) error {
	delete(s.access, accessToken)
	delete(s.refresh, refreshToken)
	return nil
}

type stubProvider struct {
	exchangeToken provider.Token
	exchangeErr   error
	refreshResult provider.Token
	refreshErr    error
	profile       provider.Profile
	profileErr    error
}

func (p *stubProvider) AuthorizeURL(state string) string {
	return "https://provider.example.com/authorize?state=" + state
}

func (p *stubProvider) Exchange(context.Context, string) (provider.Token, error) {
	return p.exchangeToken, p.exchangeErr
}

func (p *stubProvider) Refresh(context.Context, string) (provider.Token, error) {
	return p.refreshResult, p.refreshErr
}

func (p *stubProvider) FetchProfile(context.Context, string) (provider.Profile, error) {
	return p.profile, p.profileErr
}

func newTestService(store *stubStore, prov *stubProvider) *Service {
	return NewService(flow.New(store, prov))
}

func TestOAuth2Login(t *testing.T) {
	service := newTestService(newStubStore(), &stubProvider{})

	resp, err := service.OAuth2Login(context.Background(), &authenticatev1.OAuth2LoginRequest{State: "state-123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !strings.Contains(resp.GetAuthUrl(), "state=state-123") {
		t.Fatalf("expected state in auth url, got %q", resp.GetAuthUrl())
	}
}

func TestOAuth2LoginGeneratesStateWhenEmpty(t *testing.T) {
	service := newTestService(newStubStore(), &stubProvider{})

	resp, err := service.OAuth2Login(context.Background(), &authenticatev1.OAuth2LoginRequest{})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if strings.HasSuffix(resp.GetAuthUrl(), "state=") {
		t.Fatalf("expected generated state, got %q", resp.GetAuthUrl())
	}
}

func TestOAuth2LoginNilRequest(t *testing.T) {
	service := newTestService(newStubStore(), &stubProvider{})

	_, err := service.OAuth2Login(context.Background(), nil)
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestOAuth2Callback(t *testing.T) {
	store := newStubStore()
	service := newTestService(store, &stubProvider{
		exchangeToken: provider.Token{AccessToken: "AT1", RefreshToken: "RT1", ExpiresIn: 3600},
		profile: provider.Profile{
			ID:          "u1",
			Email:       "user@example.com",
			FirstName:   "Test",
			DisplayName: "testuser",
			AvatarID:    "avatar-1",
		},
	})

	resp, err := service.OAuth2Callback(context.Background(), &authenticatev1.OAuth2CallbackRequest{Code: "valid-code"})
	if err != nil {
		t.Fatalf("callback: %v", err)
	}

	if resp.GetAccessToken() != "AT1" || resp.GetRefreshToken() != "RT1" {
		t.Fatalf("unexpected tokens %q %q", resp.GetAccessToken(), resp.GetRefreshToken())
	}
	if resp.GetExpiresAt() == nil || resp.GetExpiresAt().AsTime().Before(time.Now()) {
		t.Fatalf("expected future expiry, got %v", resp.GetExpiresAt())
	}
	userProfile := resp.GetUserProfile()
	if userProfile.GetId() != "u1" || userProfile.GetEmail() != "user@example.com" {
		t.Fatalf("unexpected profile %+v", userProfile)
	}
	if !strings.Contains(userProfile.GetAvatarUrl(), "avatar-1") {
		t.Fatalf("avatar url = %q", userProfile.GetAvatarUrl())
	}
	if store.access["AT1"] != "u1" {
		t.Fatal("expected access token persisted under u1")
	}
}

func TestOAuth2CallbackValidation(t *testing.T) {
	service := newTestService(newStubStore(), &stubProvider{})

	tests := []struct {
		name string
		req  *authenticatev1.OAuth2CallbackRequest
	}{
		{name: "nil request"},
		{name: "empty code", req: &authenticatev1.OAuth2CallbackRequest{Code: "  "}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.OAuth2Callback(context.Background(), tc.req)
			if status.Code(err) != codes.InvalidArgument {
				t.Fatalf("expected InvalidArgument, got %v", err)
			}
		})
	}
}

func TestOAuth2CallbackProviderFailure(t *testing.T) {
	service := newTestService(newStubStore(), &stubProvider{
		exchangeErr: &provider.Error{Status: http.StatusBadRequest, Reason: "invalid_grant: Code has expired"},
	})

	_, err := service.OAuth2Callback(context.Background(), &authenticatev1.OAuth2CallbackRequest{Code: "bad-code"})
	st := status.Convert(err)
	if st.Code() != codes.Internal {
		t.Fatalf("expected Internal, got %v", err)
	}
	if !strings.Contains(st.Message(), "invalid_grant") {
		t.Fatalf("expected provider reason in status message, got %q", st.Message())
	}
}

func TestRefreshToken(t *testing.T) {
	store := newStubStore()
	store.refresh["RT1"] = "u1"
	service := newTestService(store, &stubProvider{
		refreshResult: provider.Token{AccessToken: "AT2", RefreshToken: "RT2", ExpiresIn: 3600},
	})

	resp, err := service.RefreshToken(context.Background(), &authenticatev1.RefreshTokenRequest{RefreshToken: "RT1"})
	if err != nil {
		t.Fatalf("refresh token: %v", err)
	}

	token := resp.GetToken()
	if token == nil {
		t.Fatalf("expected token arm, got %+v", resp)
	}
	if token.GetAuthToken() != "AT2" || token.GetRefreshToken() != "RT2" {
		t.Fatalf("unexpected token pair %+v", token)
	}
	if token.GetExpiresAt() == nil {
		t.Fatal("expected expiry on refreshed token")
	}
	if store.access["AT2"] != "u1" {
		t.Fatal("expected refreshed access token mapped to original user")
	}
}

func TestRefreshTokenUnknown(t *testing.T) {
	service := newTestService(newStubStore(), &stubProvider{})

	_, err := service.RefreshToken(context.Background(), &authenticatev1.RefreshTokenRequest{RefreshToken: "unknown"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
}

func TestRefreshTokenValidation(t *testing.T) {
	service := newTestService(newStubStore(), &stubProvider{})

	_, err := service.RefreshToken(context.Background(), &authenticatev1.RefreshTokenRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestGetProfileByToken(t *testing.T) {
	store := newStubStore()
	store.access["AT1"] = "u1"
	service := newTestService(store, &stubProvider{
		profile: provider.Profile{ID: "u1", DisplayName: "testuser"},
	})

	profile, err := service.GetProfileByToken(context.Background(), &authenticatev1.GetProfileByTokenRequest{AccessToken: "AT1"})
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if profile.GetId() != "u1" || profile.GetDisplayName() != "testuser" {
		t.Fatalf("unexpected profile %+v", profile)
	}
}

func TestGetProfileByTokenInvalid(t *testing.T) {
	store := newStubStore()
	store.access["AT1"] = "u1"

	tests := []struct {
		name    string
		service *Service
		token   string
	}{
		{
			name:    "empty token",
			service: newTestService(newStubStore(), &stubProvider{}),
			token:   " ",
		},
		{
			name:    "unknown token",
			service: newTestService(newStubStore(), &stubProvider{}),
			token:   "unknown",
		},
		{
			name: "provider rejects stored token",
			service: newTestService(store, &stubProvider{
				profileErr: &provider.Error{Status: http.StatusUnauthorized, Reason: "expired_token"},
			}),
			token: "AT1",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.service.GetProfileByToken(context.Background(), &authenticatev1.GetProfileByTokenRequest{AccessToken: tc.token})
			if status.Code(err) != codes.Unauthenticated {
				t.Fatalf("expected Unauthenticated, got %v", err)
			}
		})
	}
}

func TestSignOut(t *testing.T) {
	store := newStubStore()
	store.access["AT1"] = "u1"
	store.refresh["RT1"] = "u1"
	service := newTestService(store, &stubProvider{})

	req := &authenticatev1.SignOutRequest{AccessToken: "AT1", RefreshToken: "RT1"}
	if _, err := service.SignOut(context.Background(), req); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if _, err := service.SignOut(context.Background(), req); err != nil {
		t.Fatalf("sign out twice: %v", err)
	}

	if _, ok := store.access["AT1"]; ok {
		t.Fatal("expected access token revoked")
	}
	if _, ok := store.refresh["RT1"]; ok {
		t.Fatal("expected refresh token revoked")
	}
}

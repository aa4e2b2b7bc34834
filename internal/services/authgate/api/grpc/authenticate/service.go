// Package authenticate implements the authenticate.v1.AuthenticateService
// gRPC API. It is the transport boundary: request validation, delegation to
// the flow coordinator, and translation of domain errors into transport
// statuses happen here and nowhere else.
package authenticate

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	authenticatev1 "github.com/northreach/authgate/api/gen/go/authenticate/v1"
	apperrors "github.com/northreach/authgate/internal/platform/errors"
	"github.com/northreach/authgate/internal/services/authgate/flow"
	"github.com/northreach/authgate/internal/services/authgate/provider"
)

// Service exposes the authentication flows over gRPC.
type Service struct {
	authenticatev1.UnimplementedAuthenticateServiceServer
	flow *flow.Coordinator
}

// NewService builds the transport façade around a flow coordinator.
func NewService(coordinator *flow.Coordinator) *Service {
	return &Service{flow: coordinator}
}

// OAuth2Login returns the provider authorization URL for a login attempt.
func (s *Service) OAuth2Login(ctx context.Context, in *authenticatev1.OAuth2LoginRequest) (*authenticatev1.OAuth2LoginResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "login request is required")
	}

	return &authenticatev1.OAuth2LoginResponse{
		AuthUrl: s.flow.LoginURL(in.GetState()),
	}, nil
}

// OAuth2Callback exchanges the authorization code carried on the provider
// redirect for tokens and the user profile.
func (s *Service) OAuth2Callback(ctx context.Context, in *authenticatev1.OAuth2CallbackRequest) (*authenticatev1.OAuth2CallbackResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "callback request is required")
	}
	code := strings.TrimSpace(in.GetCode())
	if code == "" {
		return nil, status.Error(codes.InvalidArgument, "authorization code is required")
	}

	session, err := s.flow.Callback(ctx, code)
	if err != nil {
		return nil, handleDomainError(err)
	}

	return &authenticatev1.OAuth2CallbackResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		ExpiresAt:    timestamppb.New(session.ExpiresAt),
		UserProfile:  profileToProto(session.Profile),
	}, nil
}

// RefreshToken mints a new token pair from a known refresh token.
func (s *Service) RefreshToken(ctx context.Context, in *authenticatev1.RefreshTokenRequest) (*authenticatev1.RefreshTokenResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "refresh token request is required")
	}
	refreshToken := strings.TrimSpace(in.GetRefreshToken())
	if refreshToken == "" {
		return nil, status.Error(codes.InvalidArgument, "refresh token is required")
	}

	pair, err := s.flow.Refresh(ctx, refreshToken)
	if err != nil {
		return nil, handleDomainError(err)
	}

	return &authenticatev1.RefreshTokenResponse{
		Response: &authenticatev1.RefreshTokenResponse_Token{
			Token: &authenticatev1.RefreshTokenResponseData{
				AuthToken:    pair.AccessToken,
				RefreshToken: pair.RefreshToken,
				ExpiresAt:    timestamppb.New(pair.ExpiresAt),
			},
		},
	}, nil
}

// GetProfileByToken resolves an access token to the provider profile.
func (s *Service) GetProfileByToken(ctx context.Context, in *authenticatev1.GetProfileByTokenRequest) (*authenticatev1.UserProfile, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get profile request is required")
	}
	accessToken := strings.TrimSpace(in.GetAccessToken())
	if accessToken == "" {
		return nil, status.Error(codes.Unauthenticated, "invalid or expired access token")
	}

	profile, err := s.flow.ProfileByToken(ctx, accessToken)
	if err != nil {
		return nil, handleDomainError(err)
	}
	return profileToProto(profile), nil
}

// SignOut revokes a token pair. Revoking absent tokens succeeds.
func (s *Service) SignOut(ctx context.Context, in *authenticatev1.SignOutRequest) (*authenticatev1.SignOutResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "sign out request is required")
	}

	if err := s.flow.SignOut(ctx, in.GetAccessToken(), in.GetRefreshToken()); err != nil {
		return nil, handleDomainError(err)
	}
	return &authenticatev1.SignOutResponse{}, nil
}

func profileToProto(p provider.Profile) *authenticatev1.UserProfile {
	return &authenticatev1.UserProfile{
		Id:          p.ID,
		Email:       p.Email,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DisplayName: p.DisplayName,
		AvatarUrl:   p.AvatarURL(),
	}
}

// handleDomainError converts domain errors to a gRPC status using the
// structured error system.
func handleDomainError(err error) error {
	return apperrors.HandleError(err)
}

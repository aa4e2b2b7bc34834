// Package server wires the authgate runtime and gRPC lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	authenticatev1 "github.com/northreach/authgate/api/gen/go/authenticate/v1"
	"github.com/northreach/authgate/internal/platform/config"
	apperrors "github.com/northreach/authgate/internal/platform/errors"
	authenticateservice "github.com/northreach/authgate/internal/services/authgate/api/grpc/authenticate"
	"github.com/northreach/authgate/internal/services/authgate/flow"
	"github.com/northreach/authgate/internal/services/authgate/provider"
	"github.com/northreach/authgate/internal/services/authgate/token"
)

type serverEnv struct {
	RedisAddr     string `env:"AUTHGATE_REDIS_ADDR"`
	RedisPassword string `env:"AUTHGATE_REDIS_PASSWORD"`
	RedisDB       int    `env:"AUTHGATE_REDIS_DB"`

	OAuthClientID     string `env:"AUTHGATE_OAUTH_CLIENT_ID"`
	OAuthClientSecret string `env:"AUTHGATE_OAUTH_CLIENT_SECRET"`
	OAuthRedirectURI  string `env:"AUTHGATE_OAUTH_REDIRECT_URL"`
	OAuthScope        string `env:"AUTHGATE_OAUTH_SCOPE"`
	OAuthAuthorizeURL string `env:"AUTHGATE_OAUTH_AUTHORIZE_URL"`
	OAuthTokenURL     string `env:"AUTHGATE_OAUTH_TOKEN_URL"`
	OAuthUserinfoURL  string `env:"AUTHGATE_OAUTH_USERINFO_URL"`
}

func loadServerEnv() serverEnv {
	var cfg serverEnv
	_ = config.ParseEnv(&cfg)
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		cfg.RedisAddr = "localhost:6379"
	}
	return cfg
}

// Server hosts the authenticate gRPC API and the token store lifecycle.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	store      *token.Store
	logger     *zap.SugaredLogger
}

// New creates a configured authgate server listening on the provided port.
// It fails when the token store is unreachable or the provider
// configuration is malformed; the service never starts half-wired.
func New(port, workers int, logger *zap.SugaredLogger) (*Server, error) {
	if workers < 1 {
		return nil, apperrors.New(apperrors.CodeConfigInvalid, fmt.Sprintf("worker count must be positive, got %d", workers))
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("listen on port %d: %w", port, err)
	}

	srvEnv := loadServerEnv()
	store, err := token.Open(context.Background(), token.Config{
		Addr:     srvEnv.RedisAddr,
		Password: srvEnv.RedisPassword,
		DB:       srvEnv.RedisDB,
	})
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	providerClient, err := provider.NewClient(provider.Config{
		ClientID:     srvEnv.OAuthClientID,
		ClientSecret: srvEnv.OAuthClientSecret,
		RedirectURI:  srvEnv.OAuthRedirectURI,
		Scope:        srvEnv.OAuthScope,
		AuthorizeURL: srvEnv.OAuthAuthorizeURL,
		TokenURL:     srvEnv.OAuthTokenURL,
		UserinfoURL:  srvEnv.OAuthUserinfoURL,
	}, nil)
	if err != nil {
		_ = listener.Close()
		_ = store.Close()
		return nil, apperrors.Wrap(apperrors.CodeConfigInvalid, "provider configuration", err)
	}

	coordinator := flow.New(store, providerClient)

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.NumStreamWorkers(uint32(workers)),
		grpc.ChainUnaryInterceptor(loggingInterceptor(logger)),
	)
	apiService := authenticateservice.NewService(coordinator)
	healthServer := health.NewServer()
	authenticatev1.RegisterAuthenticateServiceServer(grpcServer, apiService)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("authenticate.v1.AuthenticateService", grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		store:      store,
		logger:     logger,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves an authgate server until context cancellation.
func Run(ctx context.Context, port, workers int, logger *zap.SugaredLogger) error {
	server, err := New(port, workers, logger)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the gRPC server and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.closeStore()

	s.logger.Infof("authgate server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	handleErr := func(err error) error {
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		s.grpcServer.GracefulStop()
		return handleErr(<-serveErr)
	case err := <-serveErr:
		return handleErr(err)
	}
}

func (s *Server) closeStore() {
	if s == nil || s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Errorf("close token store: %v", err)
	}
}

// loggingInterceptor logs method, duration, and outcome for every RPC.
func loggingInterceptor(logger *zap.SugaredLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		duration := time.Since(start)

		if err != nil {
			logger.Errorw("request failed",
				"method", info.FullMethod,
				"duration", duration,
				"error", err,
			)
		} else {
			logger.Infow("request completed",
				"method", info.FullMethod,
				"duration", duration,
			)
		}

		return resp, err
	}
}

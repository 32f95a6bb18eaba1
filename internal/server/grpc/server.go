// Package grpc exposes the auditkeeper services over gRPC using the
// contract in internal/api.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/auditkeeper/internal/api"
	"github.com/dmitrijs2005/auditkeeper/internal/logging"
	"github.com/dmitrijs2005/auditkeeper/internal/server/models"
	"github.com/dmitrijs2005/auditkeeper/internal/server/services"
	"google.golang.org/grpc"
)

// AuthService is the part of services.AuthService the transport calls.
type AuthService interface {
	Register(ctx context.Context, userName, password string) (*models.User, error)
	Login(ctx context.Context, userName, password string) (*services.TokenResponse, error)
}

// AuditService is the part of services.AuditService the transport calls.
type AuditService interface {
	Create(ctx context.Context, name, status, token string) (*models.Audit, error)
	List(ctx context.Context, skip, limit int) ([]*models.Audit, error)
}

type GRPCServer struct {
	address string
	auth    AuthService
	audits  AuditService
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, as AuthService, au AuditService) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		auth:    as,
		audits:  au,
	}
}

// NewServer builds a grpc.Server with the interceptor chain and the
// service registered on it.
func (s *GRPCServer) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	// logging runs outermost so recovered panics still get a request id and
	// are logged with their final status code.
	opts = append(opts, grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.recoveryInterceptor, s.accessTokenInterceptor))
	srv := grpc.NewServer(opts...)
	api.RegisterAuditKeeperServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.NewServer()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	<-stopped
	return nil
}

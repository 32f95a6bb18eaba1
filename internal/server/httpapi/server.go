// Package httpapi serves the auditkeeper services over HTTP with gin. Routes
// and response shapes follow the OAuth2 password-flow conventions: a form
// posted to /token yields {access_token, token_type}, and errors carry a
// {"detail": ...} body.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/auditkeeper/internal/logging"
	"github.com/dmitrijs2005/auditkeeper/internal/server/models"
	"github.com/dmitrijs2005/auditkeeper/internal/server/services"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

type AuthService interface {
	Register(ctx context.Context, userName, password string) (*models.User, error)
	Login(ctx context.Context, userName, password string) (*services.TokenResponse, error)
}

type AuditService interface {
	Create(ctx context.Context, name, status, token string) (*models.Audit, error)
	List(ctx context.Context, skip, limit int) ([]*models.Audit, error)
}

type HTTPServer struct {
	address string
	engine  *gin.Engine
	logger  logging.Logger
	auth    AuthService
	audits  AuditService
}

func NewHTTPServer(a string, l logging.Logger, as AuthService, au AuditService) *HTTPServer {
	s := &HTTPServer{
		address: a,
		logger:  l.With("module", "http_server"),
		auth:    as,
		audits:  au,
	}
	s.engine = s.newRouter()
	return s
}

func (s *HTTPServer) newRouter() *gin.Engine {
	r := gin.New()
	r.Use(requestID(), s.requestLogger(), gin.Recovery())

	r.POST("/users/", s.createUser)
	r.POST("/token", s.login)
	r.POST("/audits/", s.createAudit)
	r.GET("/audits/", s.listAudits)
	r.GET("/ping", s.ping)

	return r
}

// Handler exposes the router, mainly for httptest.
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve handles requests on lis until ctx is cancelled, then shuts down,
// letting in-flight requests finish for up to shutdownTimeout.
func (s *HTTPServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-stopped
}

// Package server wires the auditkeeper components together and runs the
// gRPC and HTTP endpoints until the process is told to stop.
package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/auditkeeper/internal/logging"
	"github.com/dmitrijs2005/auditkeeper/internal/server/auth"
	"github.com/dmitrijs2005/auditkeeper/internal/server/config"
	"github.com/dmitrijs2005/auditkeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/auditkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/auditkeeper/internal/server/services"
	"github.com/gin-gonic/gin"

	gs "github.com/dmitrijs2005/auditkeeper/internal/server/grpc"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	repomanager  repomanager.RepositoryManager
	authService  *services.AuthService
	auditService *services.AuditService
}

// NewApp opens the store selected by c.DatabaseDSN (in-memory when empty)
// and builds the service graph on top of it.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	if c.SecretGenerated {
		logger.Warn(ctx, "No secret key configured, using a random one; tokens will not survive a restart")
	}

	var rm repomanager.RepositoryManager
	if c.DatabaseDSN == "" {
		logger.Info(ctx, "Using in-memory store")
		rm = repomanager.NewInMemoryRepositoryManager()
	} else {
		pm, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		rm = pm
	}

	tokens, err := auth.NewTokenService(auth.TokenConfig{
		Secret: []byte(c.SecretKey),
		TTL:    c.AccessTokenValidityDuration,
	})
	if err != nil {
		_ = rm.Close()
		return nil, fmt.Errorf("token service init error: %w", err)
	}

	hasher := auth.NewBcryptHasher(c.BcryptCost)
	as, err := services.NewAuthService(services.NewCredentialStore(rm, hasher), hasher, tokens)
	if err != nil {
		_ = rm.Close()
		return nil, fmt.Errorf("auth service init error: %w", err)
	}

	if c.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	return &App{
		config:       c,
		logger:       logger,
		repomanager:  rm,
		authService:  as,
		auditService: services.NewAuditService(rm, as),
	}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "Received signal", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run serves until ctx is cancelled, a termination signal arrives or one of
// the endpoints fails. The store is closed before Run returns.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	run := func(name string, fn func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(ctx); err != nil {
				app.logger.Error(ctx, "endpoint failed", "endpoint", name, "error", err)
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
				mu.Unlock()
				cancelFunc()
			}
		}()
	}

	grpcServer := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.authService, app.auditService)
	run("grpc", grpcServer.Run)

	if app.config.EndpointAddrHTTP != "" {
		httpServer := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.authService, app.auditService)
		run("http", httpServer.Run)
	}

	wg.Wait()

	if err := app.repomanager.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close store: %w", err))
	}

	app.logger.Info(context.Background(), "App stopped")
	return errors.Join(errs...)
}

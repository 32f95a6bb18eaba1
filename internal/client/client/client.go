package client

import (
	"context"

	"github.com/dmitrijs2005/auditkeeper/internal/api"
)

type Client interface {
	Close() error
	Register(ctx context.Context, username string, password []byte) (*api.User, error)
	Login(ctx context.Context, username string, password []byte) error
	Logout()
	IsLoggedIn() bool
	Ping(ctx context.Context) error
	AddAudit(ctx context.Context, name, status string) (*api.Audit, error)
	ListAudits(ctx context.Context, skip, limit *int) ([]*api.Audit, error)
}

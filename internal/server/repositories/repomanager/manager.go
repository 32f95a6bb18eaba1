// Package repomanager vends repositories bound to a store session and owns
// the lifecycle of the underlying store.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/auditkeeper/internal/dbx"
	"github.com/dmitrijs2005/auditkeeper/internal/server/repositories/audits"
	"github.com/dmitrijs2005/auditkeeper/internal/server/repositories/users"
)

// RepositoryManager hands out per-call sessions (dbx.Acquirer) and the
// repositories that run on them.
type RepositoryManager interface {
	dbx.Acquirer
	RunMigrations(ctx context.Context) error
	Users(db dbx.DBTX) users.Repository
	Audits(db dbx.DBTX) audits.Repository
	Close() error
}

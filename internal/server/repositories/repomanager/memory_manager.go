package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"sync/atomic"

	"github.com/dmitrijs2005/auditkeeper/internal/dbx"
	"github.com/dmitrijs2005/auditkeeper/internal/server/repositories/audits"
	"github.com/dmitrijs2005/auditkeeper/internal/server/repositories/users"
)

var errNoSQL = errors.New("in-memory session does not execute SQL")

// InMemoryRepositoryManager keeps all state in process memory. Sessions are
// tokens only; the repositories ignore the handle they are bound to.
type InMemoryRepositoryManager struct {
	users  *users.MemoryRepository
	audits *audits.MemoryRepository
	open   atomic.Int64
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:  users.NewMemoryRepository(),
		audits: audits.NewMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) Acquire(ctx context.Context) (dbx.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.open.Add(1)
	return &memorySession{release: func() { m.open.Add(-1) }}, nil
}

// OpenSessions reports how many acquired sessions have not been closed yet.
func (m *InMemoryRepositoryManager) OpenSessions() int64 {
	return m.open.Load()
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context) error { return nil }

func (m *InMemoryRepositoryManager) Users(dbx.DBTX) users.Repository { return m.users }

func (m *InMemoryRepositoryManager) Audits(dbx.DBTX) audits.Repository { return m.audits }

func (m *InMemoryRepositoryManager) Close() error { return nil }

type memorySession struct {
	closed  atomic.Bool
	release func()
}

func (s *memorySession) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	return nil, errNoSQL
}

func (s *memorySession) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	return nil, errNoSQL
}

// Never called: the in-memory repositories issue no SQL.
func (s *memorySession) QueryRowContext(context.Context, string, ...any) *sql.Row {
	return nil
}

func (s *memorySession) Close() error {
	if s.closed.CompareAndSwap(false, true) {
		s.release()
	}
	return nil
}

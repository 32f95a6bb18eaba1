// Package dbx provides tiny DB abstractions shared by repositories:
// a minimal query interface (DBTX) implemented by *sql.DB, *sql.Conn and
// *sql.Tx, and a helper that scopes a store session to a single call.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by our repos.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Session is a store handle owned by exactly one call. *sql.Conn satisfies it.
type Session interface {
	DBTX
	Close() error
}

// Acquirer hands out sessions.
type Acquirer interface {
	Acquire(ctx context.Context) (Session, error)
}

// WithSession acquires a session, runs fn with it and releases the session
// on every exit path, including a panic inside fn, which is rethrown. An
// error from Close is returned only when fn itself succeeded.
//
// Typical use:
//
//	err := dbx.WithSession(ctx, manager, func(ctx context.Context, db dbx.DBTX) error {
//	    user, err = manager.Users(db).GetUserByLogin(ctx, name)
//	    return err
//	})
func WithSession(ctx context.Context, a Acquirer, fn func(ctx context.Context, db DBTX) error) (err error) {
	s, err := a.Acquire(ctx)
	if err != nil {
		return err
	}

	defer func() {
		cerr := s.Close()
		if err == nil {
			err = cerr
		}
	}()

	return fn(ctx, s)
}

// Pool adapts *sql.DB to Acquirer by checking out a dedicated connection.
type Pool struct {
	DB *sql.DB
}

func (p Pool) Acquire(ctx context.Context) (Session, error) {
	return p.DB.Conn(ctx)
}

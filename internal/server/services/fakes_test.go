package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/auditkeeper/internal/dbx"
	"github.com/dmitrijs2005/auditkeeper/internal/server/auth"
	"github.com/dmitrijs2005/auditkeeper/internal/server/models"
	"github.com/dmitrijs2005/auditkeeper/internal/server/repositories/audits"
	"github.com/dmitrijs2005/auditkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/auditkeeper/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

// --- fake repositories ---

type fakeUsersRepo struct {
	getOut    *models.User
	getErr    error
	createErr error
	created   []*models.User
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = int64(len(f.created) + 1)
	f.created = append(f.created, u)
	return u, nil
}

func (f *fakeUsersRepo) GetUserByLogin(context.Context, string) (*models.User, error) {
	return f.getOut, f.getErr
}

type fakeAuditsRepo struct {
	createErr error
	listOut   []*models.Audit
	listErr   error

	gotOffset, gotLimit int
}

func (f *fakeAuditsRepo) Create(_ context.Context, a *models.Audit) (*models.Audit, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	a.ID = 1
	return a, nil
}

func (f *fakeAuditsRepo) List(_ context.Context, offset, limit int) ([]*models.Audit, error) {
	f.gotOffset, f.gotLimit = offset, limit
	return f.listOut, f.listErr
}

// --- fake manager ---

type fakeSession struct {
	dbx.DBTX
	m *fakeRepoManager
}

func (s fakeSession) Close() error {
	s.m.open--
	return nil
}

type fakeRepoManager struct {
	u          *fakeUsersRepo
	a          *fakeAuditsRepo
	acquireErr error
	open       int
	acquired   int
}

func (m *fakeRepoManager) Acquire(context.Context) (dbx.Session, error) {
	if m.acquireErr != nil {
		return nil, m.acquireErr
	}
	m.open++
	m.acquired++
	return fakeSession{m: m}, nil
}

func (m *fakeRepoManager) RunMigrations(context.Context) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository     { return m.u }
func (m *fakeRepoManager) Audits(dbx.DBTX) audits.Repository   { return m.a }
func (m *fakeRepoManager) Close() error                        { return nil }

var _ repomanager.RepositoryManager = (*fakeRepoManager)(nil)

// --- fake tokens ---

type fakeTokens struct {
	issueErr    error
	validateErr error
	subject     string
}

func (f *fakeTokens) IssueDefault(subject string) (string, error) {
	if f.issueErr != nil {
		return "", f.issueErr
	}
	return "token-for-" + subject, nil
}

func (f *fakeTokens) Validate(string) (string, error) {
	return f.subject, f.validateErr
}

// --- wiring helpers ---

func fastHasher() *auth.BcryptHasher {
	return auth.NewBcryptHasher(bcrypt.MinCost)
}

type stack struct {
	manager     *repomanager.InMemoryRepositoryManager
	credentials *CredentialStore
	auth        *AuthService
	audits      *AuditService
	tokens      *auth.TokenService
}

// newStack wires the real components over the in-memory store.
func newStack(t *testing.T) *stack {
	t.Helper()

	m := repomanager.NewInMemoryRepositoryManager()
	h := fastHasher()
	tokens, err := auth.NewTokenService(auth.TokenConfig{Secret: []byte("test-secret")})
	require.NoError(t, err)

	creds := NewCredentialStore(m, h)
	as, err := NewAuthService(creds, h, tokens)
	require.NoError(t, err)

	return &stack{
		manager:     m,
		credentials: creds,
		auth:        as,
		audits:      NewAuditService(m, as),
		tokens:      tokens,
	}
}

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

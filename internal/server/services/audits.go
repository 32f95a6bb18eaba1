package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/auditkeeper/internal/dbx"
	"github.com/dmitrijs2005/auditkeeper/internal/server/models"
	"github.com/dmitrijs2005/auditkeeper/internal/server/repositories/repomanager"
)

// DefaultListLimit is the page size transports apply when the caller sends none.
const DefaultListLimit = 10

// IdentityResolver gates writes; *AuthService satisfies it.
type IdentityResolver interface {
	CurrentIdentity(ctx context.Context, token string) (string, error)
}

// AuditService creates and lists audit records. Creation requires a valid
// token; listing is open.
type AuditService struct {
	repomanager repomanager.RepositoryManager
	identity    IdentityResolver
	now         func() time.Time
}

func NewAuditService(m repomanager.RepositoryManager, identity IdentityResolver) *AuditService {
	return &AuditService{repomanager: m, identity: identity, now: time.Now}
}

// Create stores a new audit stamped with the server clock.
func (s *AuditService) Create(ctx context.Context, name, status, token string) (*models.Audit, error) {
	if _, err := s.identity.CurrentIdentity(ctx, token); err != nil {
		return nil, err
	}
	if err := validateInput(auditInput{Name: name, Status: status}); err != nil {
		return nil, err
	}

	var audit *models.Audit
	err := dbx.WithSession(ctx, s.repomanager, func(ctx context.Context, db dbx.DBTX) error {
		var err error
		audit, err = s.repomanager.Audits(db).Create(ctx, &models.Audit{
			Name:      name,
			Status:    status,
			CreatedAt: s.now().UTC(),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return audit, nil
}

// List returns up to limit audits after skipping skip of them, in id order.
func (s *AuditService) List(ctx context.Context, skip, limit int) ([]*models.Audit, error) {
	if err := validateInput(pageInput{Skip: skip, Limit: limit}); err != nil {
		return nil, err
	}

	var result []*models.Audit
	err := dbx.WithSession(ctx, s.repomanager, func(ctx context.Context, db dbx.DBTX) error {
		var err error
		result, err = s.repomanager.Audits(db).List(ctx, skip, limit)
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

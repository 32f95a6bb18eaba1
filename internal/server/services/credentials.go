// Package services contains server-side business logic: the credential
// store, the authentication gateway and the audit record service.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/auditkeeper/internal/common"
	"github.com/dmitrijs2005/auditkeeper/internal/dbx"
	"github.com/dmitrijs2005/auditkeeper/internal/server/auth"
	"github.com/dmitrijs2005/auditkeeper/internal/server/models"
	"github.com/dmitrijs2005/auditkeeper/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// CredentialStore persists username/password-hash pairs. Each call works on
// its own store session.
type CredentialStore struct {
	repomanager repomanager.RepositoryManager
	hasher      auth.PasswordHasher
	now         func() time.Time
}

func NewCredentialStore(m repomanager.RepositoryManager, h auth.PasswordHasher) *CredentialStore {
	return &CredentialStore{repomanager: m, hasher: h, now: time.Now}
}

// FindByUsername returns common.ErrorNotFound when no such user exists.
func (s *CredentialStore) FindByUsername(ctx context.Context, userName string) (*models.User, error) {
	var user *models.User
	err := dbx.WithSession(ctx, s.repomanager, func(ctx context.Context, db dbx.DBTX) error {
		var err error
		user, err = s.repomanager.Users(db).GetUserByLogin(ctx, userName)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create hashes password and stores a new user. It fails with
// common.ErrDuplicateUsername when userName is taken, whether that is seen
// by the lookup or by the store's unique constraint.
func (s *CredentialStore) Create(ctx context.Context, userName, password string) (*models.User, error) {
	var user *models.User

	err := dbx.WithSession(ctx, s.repomanager, func(ctx context.Context, db dbx.DBTX) error {
		repo := s.repomanager.Users(db)

		_, err := repo.GetUserByLogin(ctx, userName)
		switch {
		case err == nil:
			return common.ErrDuplicateUsername
		case !errors.Is(err, common.ErrorNotFound):
			return err
		}

		hash, err := s.hasher.Hash(password)
		if err != nil {
			if errors.Is(err, bcrypt.ErrPasswordTooLong) {
				return fmt.Errorf("%w: %w", common.ErrValidation, err)
			}
			return err
		}

		user, err = repo.Create(ctx, &models.User{
			UserName:     userName,
			PasswordHash: hash,
			CreatedAt:    s.now().UTC(),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

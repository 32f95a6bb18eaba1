// Package users persists credential records.
package users

import (
	"context"

	"github.com/dmitrijs2005/auditkeeper/internal/server/models"
)

// Repository stores users. Create returns common.ErrDuplicateUsername when the
// name is taken; GetUserByLogin returns common.ErrorNotFound when absent. Other
// failures wrap common.ErrStore.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
}

// Package audits persists audit records.
package audits

import (
	"context"

	"github.com/dmitrijs2005/auditkeeper/internal/server/models"
)

// Repository stores audits. List returns records ordered by id, skipping the
// first offset rows and returning at most limit rows; an offset past the end
// yields an empty slice. Failures wrap common.ErrStore.
type Repository interface {
	Create(ctx context.Context, audit *models.Audit) (*models.Audit, error)
	List(ctx context.Context, offset, limit int) ([]*models.Audit, error)
}

package audits

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/auditkeeper/internal/common"
	"github.com/dmitrijs2005/auditkeeper/internal/dbx"
	"github.com/dmitrijs2005/auditkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, audit *models.Audit) (*models.Audit, error) {
	query :=
		`INSERT INTO audits (name, status, created_at)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, audit.Name, audit.Status, audit.CreatedAt).Scan(&audit.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrStore, err)
	}

	return audit, nil
}

func (r *PostgresRepository) List(ctx context.Context, offset, limit int) ([]*models.Audit, error) {
	query :=
		`SELECT id, name, status, created_at FROM audits
		 ORDER BY id
		 LIMIT $1 OFFSET $2
		 `

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrStore, err)
	}
	defer rows.Close()

	result := make([]*models.Audit, 0)
	for rows.Next() {
		a, err := scanAudit(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", common.ErrStore, err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrStore, err)
	}

	return result, nil
}

func scanAudit(rows *sql.Rows) (*models.Audit, error) {
	a := &models.Audit{}
	if err := rows.Scan(&a.ID, &a.Name, &a.Status, &a.CreatedAt); err != nil {
		return nil, err
	}
	return a, nil
}

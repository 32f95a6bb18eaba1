package audits

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/auditkeeper/internal/server/models"
)

// MemoryRepository keeps audits in insertion (= id) order.
type MemoryRepository struct {
	mu     sync.RWMutex
	items  []models.Audit
	nextID int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(_ context.Context, audit *models.Audit) (*models.Audit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	audit.ID = r.nextID
	r.items = append(r.items, *audit)

	return audit, nil
}

func (r *MemoryRepository) List(_ context.Context, offset, limit int) ([]*models.Audit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if offset >= len(r.items) {
		return []*models.Audit{}, nil
	}
	end := len(r.items)
	if limit < end-offset {
		end = offset + limit
	}

	result := make([]*models.Audit, 0, end-offset)
	for _, a := range r.items[offset:end] {
		result = append(result, &a)
	}
	return result, nil
}

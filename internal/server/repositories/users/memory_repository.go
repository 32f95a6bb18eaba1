package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/auditkeeper/internal/common"
	"github.com/dmitrijs2005/auditkeeper/internal/server/models"
)

// MemoryRepository keeps users in process memory. It is safe for concurrent
// use and is shared by every session the in-memory manager hands out.
type MemoryRepository struct {
	mu     sync.RWMutex
	byName map[string]models.User
	nextID int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byName: make(map[string]models.User)}
}

func (r *MemoryRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[user.UserName]; ok {
		return nil, common.ErrDuplicateUsername
	}

	r.nextID++
	user.ID = r.nextID
	r.byName[user.UserName] = *user

	return user, nil
}

func (r *MemoryRepository) GetUserByLogin(_ context.Context, userName string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byName[userName]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

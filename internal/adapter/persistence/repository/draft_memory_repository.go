package repository

import (
	"context"
	"sync"

	"smartorders/internal/domain/entities"
	"smartorders/internal/usecase/interfaces"
)

// DraftMemoryRepository is the draft store used when no Redis address is
// configured. Drafts do not survive a restart.
type DraftMemoryRepository struct {
	mu     sync.RWMutex
	drafts map[int64]*entities.DraftOrder
}

var _ interfaces.IDraftRepository = (*DraftMemoryRepository)(nil)

func NewDraftMemoryRepository() *DraftMemoryRepository {
	return &DraftMemoryRepository{drafts: map[int64]*entities.DraftOrder{}}
}

func (r *DraftMemoryRepository) Get(_ context.Context, clientID int64) (*entities.DraftOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.drafts[clientID].Clone(), nil
}

func (r *DraftMemoryRepository) Save(_ context.Context, d *entities.DraftOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drafts[d.ClientID] = d.Clone()
	return nil
}

func (r *DraftMemoryRepository) Delete(_ context.Context, clientID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drafts, clientID)
	return nil
}

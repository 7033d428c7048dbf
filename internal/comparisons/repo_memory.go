package comparisons

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepository is an in-memory Repository for local development and tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]Comparison
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]Comparison)}
}

func (r *MemoryRepository) Create(ctx context.Context, cmp *Comparison) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[cmp.ID] = *cmp
	return nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, userID, id string) (*Comparison, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmp, ok := r.items[id]
	if !ok || cmp.UserID != userID {
		return nil, ErrNotFound
	}
	out := cmp
	return &out, nil
}

func (r *MemoryRepository) ListByUser(ctx context.Context, userID string, limit int) ([]Comparison, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Comparison
	for _, cmp := range r.items {
		if cmp.UserID == userID {
			out = append(out, cmp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ Repository = (*MemoryRepository)(nil)

package resumes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepository is an in-memory Repository for local development and tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]Resume
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]Resume)}
}

func (r *MemoryRepository) Create(ctx context.Context, resume *Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[resume.ID] = *resume
	return nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, userID, id string) (*Resume, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	resume, ok := r.items[id]
	if !ok || resume.UserID != userID {
		return nil, ErrNotFound
	}
	out := resume
	return &out, nil
}

func (r *MemoryRepository) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Resume
	for _, resume := range r.items {
		if resume.UserID == userID {
			out = append(out, resume)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (r *MemoryRepository) Update(ctx context.Context, resume *Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[resume.ID]
	if !ok || existing.UserID != resume.UserID {
		return ErrNotFound
	}
	r.items[resume.ID] = *resume
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[id]
	if !ok || existing.UserID != userID {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

var _ Repository = (*MemoryRepository)(nil)

package journal

import (
	"cmp"
	"context"
	"slices"
	"sync"
)

// MemoryRepository keeps journal entries in process memory.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewMemoryRepository(seed ...Entry) *MemoryRepository {
	r := &MemoryRepository{entries: make(map[string]Entry, len(seed))}
	for _, e := range seed {
		r.entries[e.ID] = e
	}
	return r
}

func (r *MemoryRepository) ListEntries(_ context.Context, userID string) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, 0)
	for _, e := range r.entries {
		if e.UserID == userID {
			entries = append(entries, e)
		}
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := b.IdentifiedDate.Compare(a.IdentifiedDate); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return entries, nil
}

func (r *MemoryRepository) GetEntry(_ context.Context, id string) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *MemoryRepository) CreateEntry(_ context.Context, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[entry.ID] = entry
	return nil
}

func (r *MemoryRepository) SetFavorite(_ context.Context, id string, favorite bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return ErrEntryNotFound
	}
	e.Favorite = favorite
	r.entries[id] = e
	return nil
}

func (r *MemoryRepository) DeleteEntry(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return ErrEntryNotFound
	}
	delete(r.entries, id)
	return nil
}

package careguide

import (
	"context"
	"slices"
	"strings"
	"sync"
)

type MemoryRepository struct {
	mu     sync.RWMutex
	guides []Guide
}

func NewMemoryRepository(seed ...Guide) *MemoryRepository {
	r := &MemoryRepository{}
	for _, g := range seed {
		r.Put(g)
	}
	return r
}

// Put inserts or replaces a guide by ID.
func (r *MemoryRepository) Put(g Guide) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := slices.IndexFunc(r.guides, func(x Guide) bool { return x.ID == g.ID }); i >= 0 {
		r.guides[i] = g
		return
	}
	r.guides = append(r.guides, g)
}

func (r *MemoryRepository) ListGuides(_ context.Context) ([]Guide, error) {
	r.mu.RLock()
	out := slices.Clone(r.guides)
	r.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b Guide) int {
		return strings.Compare(a.PlantName, b.PlantName)
	})
	if out == nil {
		out = []Guide{}
	}
	return out, nil
}

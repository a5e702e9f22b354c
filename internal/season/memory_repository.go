package season

import (
	"context"
	"slices"
	"strings"
	"sync"
)

// MemoryRepository is an in-memory catalog intended for local development and tests.
type MemoryRepository struct {
	mu     sync.RWMutex
	plants []Plant
}

// NewMemoryRepository returns a MemoryRepository seeded with the given plants.
func NewMemoryRepository(seed ...Plant) *MemoryRepository {
	r := &MemoryRepository{}
	for _, p := range seed {
		r.Put(p)
	}
	return r
}

// Put inserts or replaces a plant by ID.
func (r *MemoryRepository) Put(p Plant) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.MonthsActive = slices.Clone(p.MonthsActive)
	for i := range r.plants {
		if r.plants[i].ID == p.ID {
			r.plants[i] = p
			return
		}
	}
	r.plants = append(r.plants, p)
}

func (r *MemoryRepository) ListPlants(_ context.Context) ([]Plant, error) {
	r.mu.RLock()
	snapshot := make([]Plant, len(r.plants))
	for i, p := range r.plants {
		p.MonthsActive = slices.Clone(p.MonthsActive)
		snapshot[i] = p
	}
	r.mu.RUnlock()

	slices.SortStableFunc(snapshot, func(a, b Plant) int {
		return strings.Compare(a.CommonName, b.CommonName)
	})
	return snapshot, nil
}

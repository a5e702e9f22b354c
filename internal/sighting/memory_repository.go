package sighting

import (
	"context"
	"slices"
	"sync"

	"github.com/plantpal/plantpal-service/internal/season"
)

// MemoryRepository keeps species and sightings in process memory. Species keep insertion order.
type MemoryRepository struct {
	mu      sync.RWMutex
	species []Species
	reports []Report
}

func NewMemoryRepository(species ...Species) *MemoryRepository {
	return &MemoryRepository{species: slices.Clone(species)}
}

func (r *MemoryRepository) ListReports(_ context.Context) ([]Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reports := make([]Report, 0, len(r.reports))
	for _, rep := range r.reports {
		if sp, ok := r.lookup(rep.SpeciesID); ok {
			rep.Species = &sp
		}
		reports = append(reports, rep)
	}
	slices.SortStableFunc(reports, func(a, b Report) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return reports, nil
}

func (r *MemoryRepository) CreateReport(_ context.Context, report Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	report.Species = nil
	r.reports = append(r.reports, report)
	return nil
}

func (r *MemoryRepository) GetSpecies(_ context.Context, id string) (*Species, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if sp, ok := r.lookup(id); ok {
		return &sp, nil
	}
	return nil, nil
}

func (r *MemoryRepository) FirstInvasiveSpecies(_ context.Context) (*Species, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := slices.IndexFunc(r.species, func(sp Species) bool { return sp.Category == season.CategoryInvasive })
	if i < 0 {
		return nil, nil
	}
	sp := r.species[i]
	return &sp, nil
}

func (r *MemoryRepository) CountReports(_ context.Context, userID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, rep := range r.reports {
		if rep.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *MemoryRepository) CountSpecies(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.species), nil
}

func (r *MemoryRepository) lookup(id string) (Species, bool) {
	i := slices.IndexFunc(r.species, func(sp Species) bool { return sp.ID == id })
	if i < 0 {
		return Species{}, false
	}
	return r.species[i], true
}

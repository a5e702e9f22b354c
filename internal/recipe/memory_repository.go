package recipe

import (
	"context"
	"slices"
	"sync"
)

// MemoryRepository keeps recipes in process memory. Species names are resolved from the names map.
type MemoryRepository struct {
	mu      sync.RWMutex
	recipes []Recipe
	species map[string]string // speciesID -> name
}

func NewMemoryRepository(species map[string]string, seed ...Recipe) *MemoryRepository {
	names := make(map[string]string, len(species))
	for id, name := range species {
		names[id] = name
	}
	r := &MemoryRepository{species: names}
	for _, rec := range seed {
		r.Put(rec)
	}
	return r
}

// Put inserts or replaces a recipe by ID.
func (r *MemoryRepository) Put(rec Recipe) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec.Species = nil
	rec.Ingredients = slices.Clone(rec.Ingredients)
	rec.Steps = slices.Clone(rec.Steps)
	for i := range r.recipes {
		if r.recipes[i].ID == rec.ID {
			r.recipes[i] = rec
			return
		}
	}
	r.recipes = append(r.recipes, rec)
}

func (r *MemoryRepository) ListRecipes(_ context.Context) ([]Recipe, error) {
	r.mu.RLock()
	out := make([]Recipe, 0, len(r.recipes))
	for _, rec := range r.recipes {
		rec.Ingredients = slices.Clone(rec.Ingredients)
		rec.Steps = slices.Clone(rec.Steps)
		if name, ok := r.species[rec.SpeciesID]; ok {
			rec.Species = &SpeciesRef{ID: rec.SpeciesID, Name: name}
		}
		out = append(out, rec)
	}
	r.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b Recipe) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepository) CountRecipes(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.recipes), nil
}

package recipe

import (
	"context"
	"time"
)

// SpeciesRef names the plant species a recipe is built around.
type SpeciesRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Recipe is a forager recipe featuring one species.
type Recipe struct {
	ID              string      `json:"id" firestore:"-"`
	Title           string      `json:"title" firestore:"title"`
	Description     string      `json:"description,omitempty" firestore:"description"`
	Ingredients     []string    `json:"ingredients" firestore:"ingredients"`
	Steps           []string    `json:"steps" firestore:"steps"`
	ChefTip         string      `json:"chef_tip,omitempty" firestore:"chef_tip"`
	PrepTimeMinutes int         `json:"prep_time_minutes" firestore:"prep_time_minutes"`
	SpeciesID       string      `json:"species_id,omitempty" firestore:"species_id"`
	CreatedAt       time.Time   `json:"created_at" firestore:"created_at"`
	Species         *SpeciesRef `json:"species,omitempty" firestore:"-"`
}

// Repository reads the recipe catalog.
type Repository interface {
	// ListRecipes returns every recipe newest first with Species populated when the species exists.
	ListRecipes(ctx context.Context) ([]Recipe, error)
	CountRecipes(ctx context.Context) (int, error)
}

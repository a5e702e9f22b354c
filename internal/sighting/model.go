package sighting

import (
	"context"
	"time"

	"github.com/plantpal/plantpal-service/internal/season"
)

// Species is a reportable plant species.
type Species struct {
	ID       string          `json:"id" firestore:"-"`
	Name     string          `json:"name" firestore:"name"`
	Category season.Category `json:"plant_type,omitempty" firestore:"plant_type"`
}

// Report is a geolocated sighting submitted by a user.
type Report struct {
	ID        string    `json:"id" firestore:"-"`
	UserID    string    `json:"user_id" firestore:"user_id"`
	SpeciesID string    `json:"species_id" firestore:"species_id"`
	Latitude  float64   `json:"latitude" firestore:"latitude"`
	Longitude float64   `json:"longitude" firestore:"longitude"`
	Notes     string    `json:"notes,omitempty" firestore:"notes"`
	CreatedAt time.Time `json:"created_at" firestore:"created_at"`
	Species   *Species  `json:"species,omitempty" firestore:"-"`
}

// NewReport carries the caller-supplied fields of a sighting. An empty SpeciesID selects the
// first invasive species in the catalog.
type NewReport struct {
	SpeciesID string
	Latitude  float64
	Longitude float64
	Notes     string
}

// Repository persists sightings and reads the species catalog.
type Repository interface {
	// ListReports returns every report newest first with Species populated.
	ListReports(ctx context.Context) ([]Report, error)
	CreateReport(ctx context.Context, report Report) error
	// GetSpecies returns nil without error when id does not exist.
	GetSpecies(ctx context.Context, id string) (*Species, error)
	// FirstInvasiveSpecies returns nil without error when the catalog has no invasive species.
	FirstInvasiveSpecies(ctx context.Context) (*Species, error)
	CountReports(ctx context.Context, userID string) (int, error)
	CountSpecies(ctx context.Context) (int, error)
}

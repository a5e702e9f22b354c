package season

import (
	"context"
	"slices"
	"strings"
)

// Category classifies a plant for display and filtering.
type Category string

const (
	CategoryUnspecified Category = ""
	CategoryEdible      Category = "edible"
	CategoryInvasive    Category = "invasive"
	CategoryMedicinal   Category = "medicinal"
	CategoryOrnamental  Category = "ornamental"
)

// ParseCategory maps a stored plant_type value onto a Category. Unknown values are unspecified.
func ParseCategory(raw string) Category {
	switch c := Category(strings.ToLower(strings.TrimSpace(raw))); c {
	case CategoryEdible, CategoryInvasive, CategoryMedicinal, CategoryOrnamental:
		return c
	default:
		return CategoryUnspecified
	}
}

// CareDifficulty is an optional care hint attached to a plant.
type CareDifficulty string

const (
	CareEasy     CareDifficulty = "easy"
	CareModerate CareDifficulty = "moderate"
	CareHard     CareDifficulty = "hard"
)

// Plant is a seasonal catalog entry. The catalog is maintained elsewhere; this package only reads it.
type Plant struct {
	ID             string         `json:"id" firestore:"id"`
	CommonName     string         `json:"common_name" firestore:"common_name"`
	ScientificName string         `json:"scientific_name,omitempty" firestore:"scientific_name"`
	Description    string         `json:"description,omitempty" firestore:"description"`
	MonthsActive   []int          `json:"months_active" firestore:"months_active"`
	Category       Category       `json:"plant_type,omitempty" firestore:"plant_type"`
	CareDifficulty CareDifficulty `json:"care_difficulty,omitempty" firestore:"care_difficulty"`
	FunFact        string         `json:"fun_fact,omitempty" firestore:"fun_fact"`
}

// ActiveIn reports whether month is one of the plant's active months.
func (p Plant) ActiveIn(month int) bool {
	return slices.Contains(p.MonthsActive, month)
}

// SortedMonths returns the distinct active months in calendar order without touching the plant.
func (p Plant) SortedMonths() []int {
	months := slices.Clone(p.MonthsActive)
	slices.Sort(months)
	return slices.Compact(months)
}

// Listing is the response shape for a filtered catalog view.
type Listing struct {
	Month  int     `json:"month,omitempty"`
	Season Season  `json:"season,omitempty"`
	Count  int     `json:"count"`
	Plants []Plant `json:"plants"`
}

// Repository returns snapshots of the plant catalog.
type Repository interface {
	// ListPlants returns the whole catalog ordered by common name.
	ListPlants(ctx context.Context) ([]Plant, error)
}

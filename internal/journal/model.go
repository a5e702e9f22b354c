package journal

import (
	"context"
	"time"

	"github.com/plantpal/plantpal-service/internal/season"
)

// Entry is one plant a user has identified and kept in their journal.
type Entry struct {
	ID              string          `json:"id" firestore:"-"`
	UserID          string          `json:"user_id" firestore:"user_id"`
	PlantName       string          `json:"plant_name" firestore:"plant_name"`
	CommonName      string          `json:"common_name,omitempty" firestore:"common_name"`
	ScientificName  string          `json:"scientific_name,omitempty" firestore:"scientific_name"`
	ImageURL        string          `json:"image_url,omitempty" firestore:"image_url"`
	Notes           string          `json:"notes,omitempty" firestore:"notes"`
	LocationName    string          `json:"location_name,omitempty" firestore:"location_name"`
	IdentifiedDate  time.Time       `json:"identified_date" firestore:"identified_date"`
	Favorite        bool            `json:"is_favorite" firestore:"is_favorite"`
	ConfidenceScore *float64        `json:"confidence_score,omitempty" firestore:"confidence_score"`
	Category        season.Category `json:"plant_type,omitempty" firestore:"plant_type"`
}

// NewEntry carries the caller-supplied fields of a journal entry.
type NewEntry struct {
	PlantName       string
	CommonName      string
	ScientificName  string
	ImageURL        string
	Notes           string
	LocationName    string
	ConfidenceScore *float64
	Category        season.Category
}

// Filter narrows a journal listing. Kind is "all", "favorites" or a plant category.
type Filter struct {
	Query string
	Kind  string
}

const (
	KindAll       = "all"
	KindFavorites = "favorites"
)

// Summary counts are taken over the whole journal, not the filtered view.
type Summary struct {
	Total     int `json:"total"`
	Favorites int `json:"favorites"`
	Edible    int `json:"edible"`
	Medicinal int `json:"medicinal"`
}

// Listing is the response shape for a journal page.
type Listing struct {
	Entries []Entry `json:"entries"`
	Summary Summary `json:"summary"`
}

// Repository persists journal entries.
type Repository interface {
	// ListEntries returns userID's entries, most recently identified first.
	ListEntries(ctx context.Context, userID string) ([]Entry, error)
	// GetEntry returns nil without error when id does not exist.
	GetEntry(ctx context.Context, id string) (*Entry, error)
	CreateEntry(ctx context.Context, entry Entry) error
	SetFavorite(ctx context.Context, id string, favorite bool) error
	DeleteEntry(ctx context.Context, id string) error
}

package journal

import (
	"context"
	"errors"
	"strings"

	"github.com/plantpal/plantpal-service/internal/support"
)

// Service manages a user's plant journal.
type Service struct {
	repo  Repository
	clock support.Clock
	ids   support.IDGenerator
}

// NewService creates a journal service. Nil clock and id generator fall back to system defaults.
func NewService(repo Repository, clock support.Clock, ids support.IDGenerator) (*Service, error) {
	if repo == nil {
		return nil, errors.New("journal: repository is required")
	}
	if clock == nil {
		clock = support.NewSystemClock()
	}
	if ids == nil {
		ids = support.NewUUIDGenerator()
	}
	return &Service{repo: repo, clock: clock, ids: ids}, nil
}

// List returns the filtered entries along with summary counts over the full journal.
func (s *Service) List(ctx context.Context, userID string, filter Filter) (Listing, error) {
	if userID == "" {
		return Listing{}, ErrMissingUserID
	}
	entries, err := s.repo.ListEntries(ctx, userID)
	if err != nil {
		return Listing{}, err
	}
	return Listing{
		Entries: filter.Apply(entries),
		Summary: Summarize(entries),
	}, nil
}

// Create stores a new entry identified now.
func (s *Service) Create(ctx context.Context, userID string, in NewEntry) (*Entry, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}
	name := strings.TrimSpace(in.PlantName)
	if name == "" {
		return nil, ErrMissingPlantName
	}
	if in.ConfidenceScore != nil && (*in.ConfidenceScore < 0 || *in.ConfidenceScore > 1) {
		return nil, ErrInvalidScore
	}

	entry := Entry{
		ID:              s.ids.NewID(),
		UserID:          userID,
		PlantName:       name,
		CommonName:      strings.TrimSpace(in.CommonName),
		ScientificName:  strings.TrimSpace(in.ScientificName),
		ImageURL:        in.ImageURL,
		Notes:           in.Notes,
		LocationName:    in.LocationName,
		IdentifiedDate:  s.clock.Now().UTC(),
		ConfidenceScore: in.ConfidenceScore,
		Category:        in.Category,
	}
	if err := s.repo.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ToggleFavorite flips the favorite flag of one of the caller's entries.
func (s *Service) ToggleFavorite(ctx context.Context, userID, id string) (*Entry, error) {
	entry, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	entry.Favorite = !entry.Favorite
	if err := s.repo.SetFavorite(ctx, id, entry.Favorite); err != nil {
		return nil, err
	}
	return entry, nil
}

// Delete removes one of the caller's entries.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.DeleteEntry(ctx, id)
}

// owned loads id and hides entries belonging to other users behind ErrEntryNotFound.
func (s *Service) owned(ctx context.Context, userID, id string) (*Entry, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}
	entry, err := s.repo.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil || entry.UserID != userID {
		return nil, ErrEntryNotFound
	}
	return entry, nil
}

package sighting

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/plantpal/plantpal-service/internal/support"
)

// Service records and lists invasive species sightings.
type Service struct {
	repo  Repository
	clock support.Clock
	ids   support.IDGenerator
}

func NewService(repo Repository, clock support.Clock, ids support.IDGenerator) (*Service, error) {
	if repo == nil {
		return nil, errors.New("sighting: repository is required")
	}
	if clock == nil {
		clock = support.NewSystemClock()
	}
	if ids == nil {
		ids = support.NewUUIDGenerator()
	}
	return &Service{repo: repo, clock: clock, ids: ids}, nil
}

// List returns all sightings, newest first.
func (s *Service) List(ctx context.Context) ([]Report, error) {
	return s.repo.ListReports(ctx)
}

// Submit stores a report once its coordinates are valid and its species is known.
func (s *Service) Submit(ctx context.Context, userID string, in NewReport) (*Report, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}
	if err := CheckCoordinates(in.Latitude, in.Longitude); err != nil {
		return nil, err
	}

	species, err := s.resolveSpecies(ctx, strings.TrimSpace(in.SpeciesID))
	if err != nil {
		return nil, err
	}

	report := Report{
		ID:        s.ids.NewID(),
		UserID:    userID,
		SpeciesID: species.ID,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: s.clock.Now().UTC(),
	}
	if err := s.repo.CreateReport(ctx, report); err != nil {
		return nil, err
	}
	report.Species = species
	return &report, nil
}

func (s *Service) resolveSpecies(ctx context.Context, id string) (*Species, error) {
	if id == "" {
		species, err := s.repo.FirstInvasiveSpecies(ctx)
		if err != nil {
			return nil, err
		}
		if species == nil {
			return nil, ErrNoInvasiveSpecies
		}
		return species, nil
	}

	species, err := s.repo.GetSpecies(ctx, id)
	if err != nil {
		return nil, err
	}
	if species == nil {
		return nil, ErrUnknownSpecies
	}
	return species, nil
}

// CheckCoordinates rejects positions outside the WGS84 range and NaN values.
func CheckCoordinates(lat, lng float64) error {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return ErrInvalidLatitude
	}
	if math.IsNaN(lng) || lng < -180 || lng > 180 {
		return ErrInvalidLongitude
	}
	return nil
}

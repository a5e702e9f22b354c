package dashboard

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/plantpal/plantpal-service/pkg/errors"
)

var ErrMissingUserID = fmt.Errorf("%w: user id is required", apperrors.ErrInvalidArgument)

// Stats are the counters on a user's home screen.
type Stats struct {
	Reports int `json:"reports"`
	Species int `json:"species"`
	Recipes int `json:"recipes"`
}

// SightingCounter counts a user's reports and the species catalog.
type SightingCounter interface {
	CountReports(ctx context.Context, userID string) (int, error)
	CountSpecies(ctx context.Context) (int, error)
}

type RecipeCounter interface {
	CountRecipes(ctx context.Context) (int, error)
}

type Service struct {
	sightings SightingCounter
	recipes   RecipeCounter
}

func NewService(sightings SightingCounter, recipes RecipeCounter) (*Service, error) {
	if sightings == nil || recipes == nil {
		return nil, errors.New("dashboard: sighting and recipe counters are required")
	}
	return &Service{sightings: sightings, recipes: recipes}, nil
}

// Stats runs the three counts concurrently. The first failure cancels the others.
func (s *Service) Stats(ctx context.Context, userID string) (Stats, error) {
	if userID == "" {
		return Stats{}, ErrMissingUserID
	}

	var stats Stats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.sightings.CountReports(gctx, userID)
		stats.Reports = n
		return err
	})
	g.Go(func() error {
		n, err := s.sightings.CountSpecies(gctx)
		stats.Species = n
		return err
	})
	g.Go(func() error {
		n, err := s.recipes.CountRecipes(gctx)
		stats.Recipes = n
		return err
	})
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

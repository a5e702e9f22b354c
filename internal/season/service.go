package season

import (
	"context"
	"errors"

	"github.com/plantpal/plantpal-service/internal/support"
)

// Service serves filtered views of the catalog snapshot returned by its repository.
type Service struct {
	repo  Repository
	clock support.Clock
}

// NewService creates a seasonal catalog service.
func NewService(repo Repository, clock support.Clock) (*Service, error) {
	if repo == nil {
		return nil, errors.New("season: repository is required")
	}
	if clock == nil {
		clock = support.NewSystemClock()
	}
	return &Service{repo: repo, clock: clock}, nil
}

// Current lists the plants active in the clock's current month.
func (s *Service) Current(ctx context.Context) (Listing, error) {
	return s.ByMonth(ctx, int(s.clock.Now().Month()))
}

// ByMonth lists the plants active in month. The listing also names the season month falls in.
func (s *Service) ByMonth(ctx context.Context, month int) (Listing, error) {
	season, err := SeasonOf(month)
	if err != nil {
		return Listing{}, err
	}
	catalog, err := s.repo.ListPlants(ctx)
	if err != nil {
		return Listing{}, err
	}
	plants, err := PlantsActiveInMonth(catalog, month)
	if err != nil {
		return Listing{}, err
	}
	return Listing{Month: month, Season: season, Count: len(plants), Plants: normalized(plants)}, nil
}

// BySeason lists the plants active in any month of season.
func (s *Service) BySeason(ctx context.Context, season Season) (Listing, error) {
	if season.Months() == nil {
		return Listing{}, ErrUnknownSeason
	}
	catalog, err := s.repo.ListPlants(ctx)
	if err != nil {
		return Listing{}, err
	}
	plants, err := PlantsActiveInSeason(catalog, season)
	if err != nil {
		return Listing{}, err
	}
	return Listing{Season: season, Count: len(plants), Plants: normalized(plants)}, nil
}

// normalized reports each plant's months deduplicated in calendar order.
func normalized(plants []Plant) []Plant {
	for i := range plants {
		plants[i].MonthsActive = plants[i].SortedMonths()
	}
	return plants
}

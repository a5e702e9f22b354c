package careguide

import (
	"context"
	"errors"
	"strings"
)

// Browse is one page of the care guide reader: the guides matching the search and the guide on display.
type Browse struct {
	Guides   []Guide `json:"guides"`
	Selected *Guide  `json:"selected"`
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) (*Service, error) {
	if repo == nil {
		return nil, errors.New("careguide: repository is required")
	}
	return &Service{repo: repo}, nil
}

// Browse filters guides by a case-insensitive substring of the plant name. When plant is set the
// guide whose name equals it, ignoring case, is selected from the full catalog; otherwise the first
// match is.
func (s *Service) Browse(ctx context.Context, query, plant string) (Browse, error) {
	guides, err := s.repo.ListGuides(ctx)
	if err != nil {
		return Browse{}, err
	}

	out := Browse{Guides: Search(guides, query)}
	if plant = strings.TrimSpace(plant); plant != "" {
		g, ok := lookup(guides, plant)
		if !ok {
			return Browse{}, ErrGuideNotFound
		}
		out.Selected = &g
		return out, nil
	}
	if len(out.Guides) > 0 {
		first := out.Guides[0]
		out.Selected = &first
	}
	return out, nil
}

// Lookup returns the guide named plant, ignoring case.
func (s *Service) Lookup(ctx context.Context, plant string) (Guide, error) {
	guides, err := s.repo.ListGuides(ctx)
	if err != nil {
		return Guide{}, err
	}
	g, ok := lookup(guides, strings.TrimSpace(plant))
	if !ok {
		return Guide{}, ErrGuideNotFound
	}
	return g, nil
}

// Search keeps the guides whose plant name contains query, ignoring case. A blank query keeps all.
func Search(guides []Guide, query string) []Guide {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]Guide, 0, len(guides))
	for _, g := range guides {
		if query == "" || strings.Contains(strings.ToLower(g.PlantName), query) {
			out = append(out, g)
		}
	}
	return out
}

func lookup(guides []Guide, plant string) (Guide, bool) {
	if plant == "" {
		return Guide{}, false
	}
	for _, g := range guides {
		if strings.EqualFold(g.PlantName, plant) {
			return g, true
		}
	}
	return Guide{}, false
}

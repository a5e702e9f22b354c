package recipe

import (
	"context"
	"errors"
)

// Service serves the recipe catalog.
type Service struct {
	repo Repository
}

func NewService(repo Repository) (*Service, error) {
	if repo == nil {
		return nil, errors.New("recipe: repository is required")
	}
	return &Service{repo: repo}, nil
}

// List returns all recipes, newest first. Nil ingredient and step lists are reported as empty.
func (s *Service) List(ctx context.Context) ([]Recipe, error) {
	recipes, err := s.repo.ListRecipes(ctx)
	if err != nil {
		return nil, err
	}
	for i := range recipes {
		if recipes[i].Ingredients == nil {
			recipes[i].Ingredients = []string{}
		}
		if recipes[i].Steps == nil {
			recipes[i].Steps = []string{}
		}
	}
	return recipes, nil
}

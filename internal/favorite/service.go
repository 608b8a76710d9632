package favorite

import (
	"context"

	"mealmarket-be/internal/recipe"
)

// Service defines the business logic for favorites.
type Service interface {
	Add(ctx context.Context, userID, recipeID string) error
	Remove(ctx context.Context, userID, recipeID string) error
	List(ctx context.Context, userID string) ([]*recipe.Recipe, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Add(ctx context.Context, userID, recipeID string) error {
	if recipeID == "" {
		return ErrMissingRecipeID
	}
	return s.repo.Add(ctx, userID, recipeID)
}

func (s *service) Remove(ctx context.Context, userID, recipeID string) error {
	if recipeID == "" {
		return ErrMissingRecipeID
	}
	return s.repo.Remove(ctx, userID, recipeID)
}

func (s *service) List(ctx context.Context, userID string) ([]*recipe.Recipe, error) {
	return s.repo.List(ctx, userID)
}

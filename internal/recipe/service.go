package recipe

import (
	"context"

	"mealmarket-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the business logic for the recipe catalog.
type Service interface {
	Create(ctx context.Context, params CreateParams) (*Recipe, error)
	Update(ctx context.Context, params UpdateParams) (*Recipe, error)
	Delete(ctx context.Context, id, ownerID string) error
	GetByID(ctx context.Context, id string) (*Recipe, error)
	ListAll(ctx context.Context) ([]*Recipe, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Recipe, error)
	ListByCategory(ctx context.Context, category string) ([]*Recipe, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, params CreateParams) (*Recipe, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
		zap.String("owner_id", params.OwnerID),
	)

	if params.Name == "" || params.Description == "" {
		return nil, ErrMissingFields
	}
	if params.Category == "" {
		params.Category = "Uncategorized"
	}
	if params.Ingredients == nil {
		params.Ingredients = []string{}
	}

	rec := &Recipe{
		ID:          uuid.NewString(),
		Name:        params.Name,
		Description: params.Description,
		Ingredients: params.Ingredients,
		Category:    params.Category,
		Image:       params.Image,
		Price:       params.Price,
		OwnerID:     params.OwnerID,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		log.Error("failed to create recipe", zap.Error(err))
		return nil, err
	}

	return rec, nil
}

func (s *service) Update(ctx context.Context, params UpdateParams) (*Recipe, error) {
	if params.Name == "" || params.Description == "" {
		return nil, ErrMissingFields
	}
	if params.Ingredients == nil {
		params.Ingredients = []string{}
	}
	return s.repo.Update(ctx, params)
}

func (s *service) Delete(ctx context.Context, id, ownerID string) error {
	return s.repo.Delete(ctx, id, ownerID)
}

func (s *service) GetByID(ctx context.Context, id string) (*Recipe, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrRecipeNotFound
	}
	return rec, nil
}

func (s *service) ListAll(ctx context.Context) ([]*Recipe, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) ListByOwner(ctx context.Context, ownerID string) ([]*Recipe, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *service) ListByCategory(ctx context.Context, category string) ([]*Recipe, error) {
	if category == "" {
		return nil, ErrMissingCategory
	}
	return s.repo.ListByCategory(ctx, category)
}

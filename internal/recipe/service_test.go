package recipe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, rec *Recipe) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, params UpdateParams) (*Recipe, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Recipe), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id, ownerID string) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Recipe), args.Error(1)
}

func (m *MockRepository) ListAll(ctx context.Context) ([]*Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Recipe), args.Error(1)
}

func (m *MockRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Recipe, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Recipe), args.Error(1)
}

func (m *MockRepository) ListByCategory(ctx context.Context, category string) ([]*Recipe, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Recipe), args.Error(1)
}

func (m *MockRepository) Resolve(ctx context.Context, id string) (*Snapshot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Snapshot), args.Error(1)
}

func (m *MockRepository) ListOwnedIDs(ctx context.Context, ownerID string) (map[string]struct{}, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]struct{}), args.Error(1)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		rec, err := svc.Create(ctx, CreateParams{
			Name:        "Couscous Royal",
			Description: "Slow-cooked vegetables and lamb",
			Price:       24,
			OwnerID:     "cat-1",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, rec.ID)
		assert.Equal(t, "Uncategorized", rec.Category)
		assert.NotNil(t, rec.Ingredients)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - Missing Fields", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.Create(ctx, CreateParams{Name: "Couscous"})
		assert.ErrorIs(t, err, ErrMissingFields)
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetByID", ctx, "missing").Return(nil, nil).Once()

		_, err := svc.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, ErrRecipeNotFound)
	})
}

func TestService_ListByCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("ListByCategory", ctx, "Desserts").
			Return([]*Recipe{{ID: "rec-1"}}, nil).Once()

		recipes, err := svc.ListByCategory(ctx, "Desserts")
		require.NoError(t, err)
		assert.Len(t, recipes, 1)
	})

	t.Run("Error - Empty Category", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.ListByCategory(ctx, "")
		assert.ErrorIs(t, err, ErrMissingCategory)
	})
}

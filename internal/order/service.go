package order

import (
	"context"
	"fmt"
	"time"

	"mealmarket-be/internal/logger"
	"mealmarket-be/internal/recipe"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service converts cart snapshots into durable multi-vendor orders and
// gates per-item status mutation on the owning caterer.
type Service interface {
	PlaceOrder(ctx context.Context, params PlaceOrderParams) (*Order, error)
	ListForUser(ctx context.Context, userID string) ([]*Order, error)
	ListForCaterer(ctx context.Context, catererID string) ([]*Order, error)
	SetItemsStatus(ctx context.Context, catererID, orderID string, recipeIDs []string, status ItemStatus) (int, error)
}

// Catalog is the slice of the recipe repository the order engine needs:
// order-time snapshots and the ownership set behind permission checks.
type Catalog interface {
	Resolve(ctx context.Context, id string) (*recipe.Snapshot, error)
	ListOwnedIDs(ctx context.Context, ownerID string) (map[string]struct{}, error)
}

type service struct {
	repo    Repository
	catalog Catalog
}

func NewService(repo Repository, catalog Catalog) Service {
	return &service{repo: repo, catalog: catalog}
}

// PlaceOrder snapshots the given items into an immutable order. Every
// recipe is resolved at this instant; later catalog edits never change
// the stored line items. Clearing the source cart is the caller's job.
func (s *service) PlaceOrder(ctx context.Context, params PlaceOrderParams) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PlaceOrder"),
		zap.String("user_id", params.UserID),
		zap.Int("item_count", len(params.Items)),
	)

	if params.UserID == "" {
		return nil, ErrUnauthorized
	}
	if len(params.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	items := make([]LineItem, 0, len(params.Items))
	for _, in := range params.Items {
		if in.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}

		snap, err := s.catalog.Resolve(ctx, in.RecipeID)
		if err != nil {
			return nil, err
		}
		if snap == nil {
			log.Warn("order references unknown recipe", zap.String("recipe_id", in.RecipeID))
			return nil, fmt.Errorf("%w: %s", ErrRecipeNotFound, in.RecipeID)
		}

		items = append(items, LineItem{
			RecipeID:  in.RecipeID,
			Name:      snap.Name,
			Image:     snap.Image,
			Price:     snap.Price,
			Quantity:  in.Quantity,
			Status:    ItemPending,
			CatererID: snap.OwnerID,
		})
	}

	method := params.Method
	if method == "" {
		method = "cod"
	}

	o := &Order{
		ID:          uuid.NewString(),
		UserID:      params.UserID,
		Items:       items,
		Address:     params.Address,
		Method:      method,
		TotalAmount: params.TotalAmount,
		Status:      StatusPending,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.CreateOrder(ctx, o); err != nil {
		return nil, err
	}

	log.Info("order placed", zap.String("order_id", o.ID))
	return o, nil
}

func (s *service) ListForUser(ctx context.Context, userID string) ([]*Order, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}

	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		o.Overall = OverallStatus(o.Items)
	}

	return orders, nil
}

func (s *service) ListForCaterer(ctx context.Context, catererID string) ([]*Order, error) {
	if catererID == "" {
		return nil, ErrUnauthorized
	}

	orders, err := s.repo.ListContainingOwnedItems(ctx, catererID)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		o.Overall = OverallStatus(o.Items)
	}

	return orders, nil
}

// SetItemsStatus moves the caterer's line items of one order to the
// given status. Ownership is all-or-nothing: a single foreign id
// rejects the whole call before anything is written.
func (s *service) SetItemsStatus(ctx context.Context, catererID, orderID string, recipeIDs []string, status ItemStatus) (int, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SetItemsStatus"),
		zap.String("caterer_id", catererID),
		zap.String("order_id", orderID),
		zap.String("status", string(status)),
	)

	if catererID == "" {
		return 0, ErrUnauthorized
	}
	if orderID == "" || len(recipeIDs) == 0 {
		return 0, ErrMissingInput
	}
	if !status.Valid() {
		return 0, ErrInvalidStatus
	}

	owned, err := s.catalog.ListOwnedIDs(ctx, catererID)
	if err != nil {
		return 0, err
	}
	for _, id := range recipeIDs {
		if _, ok := owned[id]; !ok {
			log.Warn("status update rejected", zap.String("recipe_id", id))
			return 0, ErrItemsNotOwned
		}
	}

	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return 0, err
	}
	if o == nil {
		return 0, ErrOrderNotFound
	}

	requested := make(map[string]struct{}, len(recipeIDs))
	for _, id := range recipeIDs {
		requested[id] = struct{}{}
	}
	for _, item := range o.Items {
		if _, ok := requested[item.RecipeID]; !ok {
			continue
		}
		if !CanTransition(item.Status, status) {
			return 0, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, item.Status, status)
		}
	}

	count, err := s.repo.UpdateItemStatuses(ctx, orderID, recipeIDs, status)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		// Defensive: the ownership check should guarantee matches.
		return 0, ErrNoItemsUpdated
	}

	log.Info("item statuses updated", zap.Int64("updated", count))
	return int(count), nil
}

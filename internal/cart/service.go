package cart

import (
	"context"

	"mealmarket-be/internal/logger"

	"go.uber.org/zap"
)

// Service reconciles the two copies of a cart: the client-local copy
// (anonymous sessions, in-process) and the server copy (authenticated
// identities, Redis). Local mutations are optimistic and never rolled
// back; pushes to the server copy are best effort.
type Service interface {
	Get(ctx context.Context, sessionID, userID string) (Quantities, error)
	AddItem(ctx context.Context, sessionID, userID, itemID string) (Quantities, error)
	SetItemQuantity(ctx context.Context, sessionID, userID, itemID string, qty int) (Quantities, error)
	Clear(ctx context.Context, sessionID, userID string) error

	// FetchServerCart runs the login-time merge: union of keys with the
	// server value winning per key, then a key-by-key resync back to the
	// server whenever the local copy held anything before the merge.
	FetchServerCart(ctx context.Context, sessionID, userID string) (Quantities, error)
}

type service struct {
	local  Store
	remote Store
}

func NewService(local, remote Store) Service {
	return &service{local: local, remote: remote}
}

// localKey picks the key for the client-local copy. Authenticated
// requests without a session id fall back to the identity.
func localKey(sessionID, userID string) string {
	if sessionID != "" {
		return sessionID
	}
	return userID
}

func (s *service) Get(ctx context.Context, sessionID, userID string) (Quantities, error) {
	if sessionID == "" && userID == "" {
		return nil, ErrMissingOwner
	}

	if userID != "" {
		return s.remote.Get(ctx, userID)
	}
	return s.local.Get(ctx, localKey(sessionID, userID))
}

func (s *service) AddItem(ctx context.Context, sessionID, userID, itemID string) (Quantities, error) {
	if itemID == "" {
		return nil, ErrMissingItemID
	}
	if sessionID == "" && userID == "" {
		return nil, ErrMissingOwner
	}

	key := localKey(sessionID, userID)
	if _, err := s.local.Increment(ctx, key, itemID); err != nil {
		return nil, err
	}

	// Server sync is best effort: the local mutation stands even when
	// the push fails.
	if userID != "" {
		if _, err := s.remote.Increment(ctx, userID, itemID); err != nil {
			logger.FromCtx(ctx).Warn("failed to add to cart on server",
				zap.String("item_id", itemID),
				zap.Error(err),
			)
		}
	}

	return s.local.Get(ctx, key)
}

func (s *service) SetItemQuantity(ctx context.Context, sessionID, userID, itemID string, qty int) (Quantities, error) {
	if itemID == "" {
		return nil, ErrMissingItemID
	}
	if sessionID == "" && userID == "" {
		return nil, ErrMissingOwner
	}

	key := localKey(sessionID, userID)
	if err := s.local.SetItem(ctx, key, itemID, qty); err != nil {
		return nil, err
	}

	if userID != "" {
		if err := s.remote.SetItem(ctx, userID, itemID, qty); err != nil {
			logger.FromCtx(ctx).Warn("failed to update cart on server",
				zap.String("item_id", itemID),
				zap.Int("quantity", qty),
				zap.Error(err),
			)
		}
	}

	return s.local.Get(ctx, key)
}

func (s *service) Clear(ctx context.Context, sessionID, userID string) error {
	if sessionID == "" && userID == "" {
		return ErrMissingOwner
	}

	if err := s.local.Clear(ctx, localKey(sessionID, userID)); err != nil {
		return err
	}

	if userID != "" {
		if err := s.remote.Clear(ctx, userID); err != nil {
			logger.FromCtx(ctx).Warn("failed to clear cart on server", zap.Error(err))
		}
	}

	return nil
}

func (s *service) FetchServerCart(ctx context.Context, sessionID, userID string) (Quantities, error) {
	if userID == "" {
		return nil, ErrMissingOwner
	}

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "FetchServerCart"),
		zap.String("user_id", userID),
	)

	server, err := s.remote.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := localKey(sessionID, userID)
	local, err := s.local.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	merged := Merge(local, server)
	if err := s.local.Replace(ctx, key, merged); err != nil {
		return nil, err
	}

	// Push the merged map back only when the local copy had entries
	// before the merge. One key per write; a failure midway leaves the
	// server cart mixed.
	if len(local) > 0 {
		for itemID, qty := range merged {
			if err := s.remote.SetItem(ctx, userID, itemID, qty); err != nil {
				log.Warn("cart resync interrupted",
					zap.String("item_id", itemID),
					zap.Error(err),
				)
				break
			}
		}
	}

	log.Debug("cart merged",
		zap.Int("local_keys", len(local)),
		zap.Int("server_keys", len(server)),
		zap.Int("merged_keys", len(merged)),
	)

	return merged, nil
}

package cart

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each server-side cart as one hash keyed by owner.
// Field-level writes are the only concurrency control: last write wins
// per key.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func cartKey(ownerID string) string {
	return "cart:" + ownerID
}

func (s *RedisStore) Get(ctx context.Context, ownerID string) (Quantities, error) {
	fields, err := s.client.HGetAll(ctx, cartKey(ownerID)).Result()
	if err != nil {
		return nil, err
	}

	q := make(Quantities, len(fields))
	for itemID, raw := range fields {
		qty, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		q.Set(itemID, qty)
	}
	return q, nil
}

func (s *RedisStore) SetItem(ctx context.Context, ownerID, itemID string, qty int) error {
	if qty <= 0 {
		return s.client.HDel(ctx, cartKey(ownerID), itemID).Err()
	}
	return s.client.HSet(ctx, cartKey(ownerID), itemID, qty).Err()
}

func (s *RedisStore) Increment(ctx context.Context, ownerID, itemID string) (int, error) {
	qty, err := s.client.HIncrBy(ctx, cartKey(ownerID), itemID, 1).Result()
	if err != nil {
		return 0, err
	}
	return int(qty), nil
}

func (s *RedisStore) Replace(ctx context.Context, ownerID string, q Quantities) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, cartKey(ownerID))
	for itemID, qty := range q {
		if qty > 0 {
			pipe.HSet(ctx, cartKey(ownerID), itemID, qty)
		}
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Clear(ctx context.Context, ownerID string) error {
	return s.client.Del(ctx, cartKey(ownerID)).Err()
}

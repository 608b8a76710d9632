package order

import (
	"context"
	"database/sql"
	"encoding/json"

	"mealmarket-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	// CreateOrder inserts the order header and all line items in one
	// transaction.
	CreateOrder(ctx context.Context, o *Order) error

	GetByID(ctx context.Context, id string) (*Order, error)

	// ListByUser returns the buyer's orders, items included, newest
	// first.
	ListByUser(ctx context.Context, userID string) ([]*Order, error)

	// ListContainingOwnedItems returns every order holding at least one
	// line item owned by the caterer, with the items filtered down to
	// that caterer's, newest first.
	ListContainingOwnedItems(ctx context.Context, catererID string) ([]*Order, error)

	// UpdateItemStatuses sets the status of the matching line items and
	// reports how many rows changed.
	UpdateItemStatuses(ctx context.Context, orderID string, recipeIDs []string, status ItemStatus) (int64, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateOrder(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrder"),
		zap.String("order_id", o.ID),
		zap.Int("item_count", len(o.Items)),
	)

	addressJSON, err := json.Marshal(o.Address)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (
			id, user_id, address, method, total_amount, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		o.ID,
		o.UserID,
		addressJSON,
		o.Method,
		o.TotalAmount,
		o.Status,
		o.CreatedAt,
	)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return err
	}

	for i, item := range o.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (
				order_id, position, recipe_id, name, image,
				price, quantity, status, caterer_id
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`,
			o.ID,
			i,
			item.RecipeID,
			item.Name,
			item.Image,
			item.Price,
			item.Quantity,
			item.Status,
			item.CatererID,
		)
		if err != nil {
			log.Error("failed to insert order item",
				zap.String("recipe_id", item.RecipeID),
				zap.Error(err),
			)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	log.Info("order created")
	return nil
}

const orderColumns = `id, user_id, address, method, total_amount, status, created_at`

func scanOrder(row interface{ Scan(...any) error }) (*Order, error) {
	var (
		o           Order
		addressJSON []byte
	)

	err := row.Scan(
		&o.ID,
		&o.UserID,
		&addressJSON,
		&o.Method,
		&o.TotalAmount,
		&o.Status,
		&o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(addressJSON, &o.Address); err != nil {
		return nil, err
	}

	return &o, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	o, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	items, err := r.loadItems(ctx, []string{o.ID}, "")
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]

	return o, nil
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`

	return r.listWithItems(ctx, query, userID, "")
}

func (r *repository) ListContainingOwnedItems(ctx context.Context, catererID string) ([]*Order, error) {
	query := `
	SELECT ` + orderColumns + `
	FROM orders o
	WHERE EXISTS (
		SELECT 1 FROM order_items oi
		WHERE oi.order_id = o.id AND oi.caterer_id = $1
	)
	ORDER BY o.created_at DESC`

	return r.listWithItems(ctx, query, catererID, catererID)
}

func (r *repository) UpdateItemStatuses(ctx context.Context, orderID string, recipeIDs []string, status ItemStatus) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE order_items
		SET status = $1
		WHERE order_id = $2 AND recipe_id = ANY($3)
	`, status, orderID, pq.Array(recipeIDs))
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

// listWithItems runs an order header query with one argument and then
// attaches the line items, optionally filtered to one caterer.
func (r *repository) listWithItems(ctx context.Context, query, arg, catererFilter string) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*Order, 0)
	ids := make([]string, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	items, err := r.loadItems(ctx, ids, catererFilter)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		o.Items = items[o.ID]
		if o.Items == nil {
			o.Items = []LineItem{}
		}
	}

	return orders, nil
}

func (r *repository) loadItems(ctx context.Context, orderIDs []string, catererFilter string) (map[string][]LineItem, error) {
	query := `
	SELECT order_id, recipe_id, name, image, price, quantity, status, caterer_id
	FROM order_items
	WHERE order_id = ANY($1)`

	args := []any{pq.Array(orderIDs)}
	if catererFilter != "" {
		query += ` AND caterer_id = $2`
		args = append(args, catererFilter)
	}
	query += ` ORDER BY order_id, position`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[string][]LineItem)
	for rows.Next() {
		var (
			orderID string
			item    LineItem
		)
		if err := rows.Scan(
			&orderID,
			&item.RecipeID,
			&item.Name,
			&item.Image,
			&item.Price,
			&item.Quantity,
			&item.Status,
			&item.CatererID,
		); err != nil {
			return nil, err
		}
		items[orderID] = append(items[orderID], item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

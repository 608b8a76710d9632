package recipe

import (
	"context"
	"database/sql"

	"mealmarket-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, rec *Recipe) error
	Update(ctx context.Context, params UpdateParams) (*Recipe, error)
	Delete(ctx context.Context, id, ownerID string) error
	GetByID(ctx context.Context, id string) (*Recipe, error)
	ListAll(ctx context.Context) ([]*Recipe, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Recipe, error)
	ListByCategory(ctx context.Context, category string) ([]*Recipe, error)

	// Resolve captures the order-time snapshot of a recipe.
	Resolve(ctx context.Context, id string) (*Snapshot, error)

	// ListOwnedIDs returns the set of recipe ids owned by a caterer.
	ListOwnedIDs(ctx context.Context, ownerID string) (map[string]struct{}, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// listQuery joins the owning account so list views can show the seller
// name without a second round trip.
const listQuery = `
	SELECT
		r.id,
		r.name,
		r.description,
		r.ingredients,
		r.category,
		r.image,
		r.price,
		r.owner_id,
		COALESCE(u.business_name, u.username),
		r.created_at
	FROM recipes r
	JOIN users u ON r.owner_id = u.id
`

func (r *repository) Create(ctx context.Context, rec *Recipe) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("owner_id", rec.OwnerID),
	)

	query := `
	INSERT INTO recipes (
		id,
		name,
		description,
		ingredients,
		category,
		image,
		price,
		owner_id
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING created_at
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		rec.ID,
		rec.Name,
		rec.Description,
		pq.Array(rec.Ingredients),
		rec.Category,
		rec.Image,
		rec.Price,
		rec.OwnerID,
	).Scan(&rec.CreatedAt)
	if err != nil {
		log.Error("failed to create recipe", zap.Error(err))
		return err
	}

	log.Info("recipe created", zap.String("recipe_id", rec.ID))
	return nil
}

func (r *repository) Update(ctx context.Context, params UpdateParams) (*Recipe, error) {
	query := `
	UPDATE recipes
	SET name = $1,
	    description = $2,
	    ingredients = $3,
	    category = $4,
	    image = $5,
	    price = $6
	WHERE id = $7 AND owner_id = $8
	RETURNING id, name, description, ingredients, category, image, price, owner_id, created_at
	`

	rec := &Recipe{}
	err := r.db.QueryRowContext(
		ctx,
		query,
		params.Name,
		params.Description,
		pq.Array(params.Ingredients),
		params.Category,
		params.Image,
		params.Price,
		params.ID,
		params.OwnerID,
	).Scan(
		&rec.ID,
		&rec.Name,
		&rec.Description,
		pq.Array(&rec.Ingredients),
		&rec.Category,
		&rec.Image,
		&rec.Price,
		&rec.OwnerID,
		&rec.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		return nil, err
	}

	return rec, nil
}

func (r *repository) Delete(ctx context.Context, id, ownerID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM recipes
		WHERE id = $1 AND owner_id = $2
	`, id, ownerID)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRecipeNotFound
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Recipe, error) {
	rec, err := r.scanOne(r.db.QueryRowContext(ctx, listQuery+` WHERE r.id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *repository) ListAll(ctx context.Context) ([]*Recipe, error) {
	return r.list(ctx, listQuery+` ORDER BY r.created_at DESC`)
}

func (r *repository) ListByOwner(ctx context.Context, ownerID string) ([]*Recipe, error) {
	return r.list(ctx, listQuery+` WHERE r.owner_id = $1 ORDER BY r.created_at DESC`, ownerID)
}

func (r *repository) ListByCategory(ctx context.Context, category string) ([]*Recipe, error) {
	return r.list(ctx, listQuery+` WHERE LOWER(r.category) = LOWER($1) ORDER BY r.created_at DESC`, category)
}

func (r *repository) Resolve(ctx context.Context, id string) (*Snapshot, error) {
	query := `
	SELECT name, image, price, owner_id
	FROM recipes
	WHERE id = $1
	`

	snap := &Snapshot{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&snap.Name,
		&snap.Image,
		&snap.Price,
		&snap.OwnerID,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return snap, nil
}

func (r *repository) ListOwnedIDs(ctx context.Context, ownerID string) (map[string]struct{}, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM recipes WHERE owner_id = $1`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	owned := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		owned[id] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return owned, nil
}

func (r *repository) scanOne(row *sql.Row) (*Recipe, error) {
	rec := &Recipe{}
	err := row.Scan(
		&rec.ID,
		&rec.Name,
		&rec.Description,
		pq.Array(&rec.Ingredients),
		&rec.Category,
		&rec.Image,
		&rec.Price,
		&rec.OwnerID,
		&rec.OwnerName,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *repository) list(ctx context.Context, query string, args ...any) ([]*Recipe, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recipes := make([]*Recipe, 0)
	for rows.Next() {
		rec := &Recipe{}
		if err := rows.Scan(
			&rec.ID,
			&rec.Name,
			&rec.Description,
			pq.Array(&rec.Ingredients),
			&rec.Category,
			&rec.Image,
			&rec.Price,
			&rec.OwnerID,
			&rec.OwnerName,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return recipes, nil
}

package favorite

import (
	"context"
	"database/sql"
	"errors"

	"mealmarket-be/internal/recipe"

	"github.com/lib/pq"
)

type Repository interface {
	Add(ctx context.Context, userID, recipeID string) error
	Remove(ctx context.Context, userID, recipeID string) error
	List(ctx context.Context, userID string) ([]*recipe.Recipe, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Add(ctx context.Context, userID, recipeID string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO favorites (user_id, recipe_id)
		VALUES ($1, $2)
	`, userID, recipeID)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == PgUniqueViolation {
		return ErrAlreadyFavorite
	}
	return err
}

func (r *repository) Remove(ctx context.Context, userID, recipeID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM favorites
		WHERE user_id = $1 AND recipe_id = $2
	`, userID, recipeID)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFavorite
	}

	return nil
}

func (r *repository) List(ctx context.Context, userID string) ([]*recipe.Recipe, error) {
	query := `
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
	FROM favorites f
	JOIN recipes r ON f.recipe_id = r.id
	JOIN users u ON r.owner_id = u.id
	WHERE f.user_id = $1
	ORDER BY f.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recipes := make([]*recipe.Recipe, 0)
	for rows.Next() {
		rec := &recipe.Recipe{}
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

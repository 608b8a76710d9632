package favorite

import "errors"

var (
	ErrAlreadyFavorite = errors.New("recipe already in favorites")
	ErrNotFavorite     = errors.New("recipe not in favorites")
	ErrMissingRecipeID = errors.New("recipe id is required")

	// -- Constants (External Systems) --
	PgUniqueViolation = "23505"
)

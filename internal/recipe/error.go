package recipe

import "errors"

var (
	// -- Validation & Input --
	ErrMissingFields   = errors.New("the name and description fields are required")
	ErrMissingCategory = errors.New("category not specified")

	// -- Resource State --
	ErrRecipeNotFound = errors.New("recipe not found")
)

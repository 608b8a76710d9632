package order

import "errors"

var (
	// -- Validation & Input --
	ErrEmptyOrder      = errors.New("cart is empty")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrMissingInput    = errors.New("order id and items are required")
	ErrInvalidStatus   = errors.New("invalid item status")

	// -- Authorization --
	ErrUnauthorized  = errors.New("unauthorized")
	ErrItemsNotOwned = errors.New("you don't have permission to update all these items")

	// -- Resource State --
	ErrOrderNotFound     = errors.New("order not found")
	ErrRecipeNotFound    = errors.New("recipe not found")
	ErrNoItemsUpdated    = errors.New("no items were updated")
	ErrIllegalTransition = errors.New("status transition not allowed")
)

package cart

import "errors"

var (
	// -- Validation & Input --
	ErrMissingItemID = errors.New("item id is required")
	ErrMissingOwner  = errors.New("cart owner is required")
)

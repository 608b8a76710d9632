package user

import "errors"

var (
	// -- Validation & Input --
	ErrMissingFields           = errors.New("username, phone and password are required")
	ErrInvalidRole             = errors.New("role must be user or caterer")
	ErrBusinessProfileRequired = errors.New("business name and address are required for caterers")

	// -- Authentication --
	ErrPhoneExists        = errors.New("phone already registered")
	ErrInvalidCredentials = errors.New("invalid phone or password")

	// -- Resource State --
	ErrUserNotFound    = errors.New("user not found")
	ErrCatererNotFound = errors.New("caterer not found")

	// -- Constants (External Systems) --
	PgUniqueViolation = "23505"
)

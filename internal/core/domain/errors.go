package domain

import "errors"

// Sentinel errors raised by the core services. The API layer maps each to an
// HTTP status; no error is swallowed on the way out.
var (
	// Conflict class.
	ErrUserExists          = errors.New("username or email already exists")
	ErrCategoryHasProducts = errors.New("cannot delete category with existing products")

	// Validation class (malformed or non-resolving references).
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidCategory = errors.New("category not found")
	ErrInvalidCreator  = errors.New("user not found")

	// NotFound class.
	ErrUserNotFound     = errors.New("user not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")

	// Unauthorized class. Unknown username and wrong password both collapse
	// into ErrInvalidCredentials so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")

	ErrForbidden = errors.New("access forbidden")
)

package ports

import (
	"context"

	"github.com/inventoryapi/inventory-system/internal/core/domain"
)

// Repositories return (nil, nil) when a single-row lookup matches nothing;
// the services turn that absence into the right domain error for their
// operation. Storage constraint violations at write time (unique, foreign
// key) are translated into domain errors by the implementation, acting as
// the backstop for the services' check-then-act races.

// UserRepository persists accounts.
type UserRepository interface {
	GetByID(ctx context.Context, id int) (*domain.User, error)
	// FindByUsername eagerly loads the account's role.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Exists reports whether any account already uses username or email.
	Exists(ctx context.Context, username, email string) (bool, error)
	Create(ctx context.Context, user *domain.User) error
}

// RoleRepository persists the role vocabulary.
type RoleRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Role, error)
	GetAll(ctx context.Context) ([]domain.Role, error)
	Create(ctx context.Context, role *domain.Role) error
}

// CategoryRepository persists categories and their product relations.
type CategoryRepository interface {
	GetByID(ctx context.Context, id int) (*domain.Category, error)
	// GetWithProducts eagerly loads the owned product collection.
	GetWithProducts(ctx context.Context, id int) (*domain.Category, error)
	GetAllWithProducts(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, category *domain.Category) error
}

// ProductRepository persists products.
type ProductRepository interface {
	GetByID(ctx context.Context, id int) (*domain.Product, error)
	// GetWithDetails eagerly resolves the category and creator references.
	GetWithDetails(ctx context.Context, id int) (*domain.Product, error)
	GetAllWithDetails(ctx context.Context) ([]domain.Product, error)
	GetByCategory(ctx context.Context, categoryID int) ([]domain.Product, error)
	// GetLowStock returns products with stock at or below threshold.
	GetLowStock(ctx context.Context, threshold int) ([]domain.Product, error)
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, product *domain.Product) error
}

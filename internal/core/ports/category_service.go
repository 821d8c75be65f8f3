package ports

import "context"

// CategoryDTO is the category read model exposed to callers.
type CategoryDTO struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	ProductCount int    `json:"product_count"`
}

// CategoryService enforces the invariants the store cannot express
// declaratively, most notably the dependent-product guard on delete.
type CategoryService interface {
	GetAll(ctx context.Context) ([]CategoryDTO, error)
	GetByID(ctx context.Context, id int) (*CategoryDTO, error)
	Create(ctx context.Context, name string) (*CategoryDTO, error)
	Update(ctx context.Context, id int, name string) (*CategoryDTO, error)
	// Delete fails while the category owns at least one product.
	Delete(ctx context.Context, id int) error
}

package ports

import (
	"context"
	"time"
)

// DefaultLowStockThreshold is used when a caller does not supply one.
const DefaultLowStockThreshold = 10

// ProductDTO is the product read model with its references resolved to
// display values.
type ProductDTO struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	StockQuantity int       `json:"stock_quantity"`
	Price         float64   `json:"price"`
	PictureURL    string    `json:"picture_url"`
	CategoryID    int       `json:"category_id"`
	CategoryName  string    `json:"category_name"`
	CreatedAt     time.Time `json:"created_at"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
	CreatedByUser string    `json:"created_by_user,omitempty"`
}

// ProductInput carries the mutable product fields for create and update.
type ProductInput struct {
	Name          string
	Description   string
	StockQuantity int
	Price         float64
	PictureURL    string
	CategoryID    int
}

// ProductService validates references before mutation and keeps the
// last-updated timestamp fresh.
type ProductService interface {
	GetAll(ctx context.Context) ([]ProductDTO, error)
	GetByID(ctx context.Context, id int) (*ProductDTO, error)
	GetByCategory(ctx context.Context, categoryID int) ([]ProductDTO, error)
	GetLowStock(ctx context.Context, threshold int) ([]ProductDTO, error)
	// Create attributes the product to the creating account.
	Create(ctx context.Context, in ProductInput, creatorID int) (*ProductDTO, error)
	Update(ctx context.Context, id int, in ProductInput) (*ProductDTO, error)
	Delete(ctx context.Context, id int) error
}

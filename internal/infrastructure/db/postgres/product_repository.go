package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/inventoryapi/inventory-system/internal/core/domain"
)

type ProductRepository struct {
	repository[domain.Product]
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{repository[domain.Product]{db: db}}
}

func (r *ProductRepository) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	return r.getByID(ctx, id)
}

func (r *ProductRepository) GetWithDetails(ctx context.Context, id int) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("CreatedByUser").
		Preload("CreatedByUser.Role").
		First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get product with details: %w", err)
	}
	return &product, nil
}

func (r *ProductRepository) GetAllWithDetails(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("CreatedByUser").
		Preload("CreatedByUser.Role").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("list products with details: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) GetByCategory(ctx context.Context, categoryID int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("CreatedByUser").
		Where("category_id = ?", categoryID).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) GetLowStock(ctx context.Context, threshold int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("stock_quantity <= ?", threshold).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("list low-stock products: %w", err)
	}
	return products, nil
}

// Create and Update translate FK violations into the validation error for a
// category (or creator) that disappeared between the service's check and the
// write.
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	err := r.create(ctx, product)
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domain.ErrInvalidCategory
	}
	return err
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	err := r.update(ctx, product)
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domain.ErrInvalidCategory
	}
	return err
}

func (r *ProductRepository) Delete(ctx context.Context, product *domain.Product) error {
	return r.remove(ctx, product)
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/inventoryapi/inventory-system/internal/core/domain"
)

type CategoryRepository struct {
	repository[domain.Category]
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{repository[domain.Category]{db: db}}
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	return r.getByID(ctx, id)
}

func (r *CategoryRepository) GetWithProducts(ctx context.Context, id int) (*domain.Category, error) {
	var category domain.Category
	err := r.db.WithContext(ctx).Preload("Products").First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get category with products: %w", err)
	}
	return &category, nil
}

func (r *CategoryRepository) GetAllWithProducts(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := r.db.WithContext(ctx).Preload("Products").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories with products: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	return r.create(ctx, category)
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	return r.update(ctx, category)
}

// Delete removes the category row. The FK restrict constraint is the
// backstop for a product inserted after the service's dependent-product
// check; it surfaces as the same conflict.
func (r *CategoryRepository) Delete(ctx context.Context, category *domain.Category) error {
	err := r.remove(ctx, category)
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domain.ErrCategoryHasProducts
	}
	return err
}

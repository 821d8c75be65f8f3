package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/inventoryapi/inventory-system/internal/core/domain"
	"github.com/inventoryapi/inventory-system/internal/core/ports"
)

// CategoryService enforces the dependent-product guard on top of the
// category repository.
type CategoryService struct {
	categories ports.CategoryRepository
	logger     zerolog.Logger
}

func NewCategoryService(categories ports.CategoryRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{categories: categories, logger: logger}
}

func (s *CategoryService) GetAll(ctx context.Context) ([]ports.CategoryDTO, error) {
	categories, err := s.categories.GetAllWithProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	dtos := make([]ports.CategoryDTO, 0, len(categories))
	for i := range categories {
		dtos = append(dtos, toCategoryDTO(&categories[i]))
	}
	return dtos, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id int) (*ports.CategoryDTO, error) {
	category, err := s.categories.GetWithProducts(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}

	dto := toCategoryDTO(category)
	return &dto, nil
}

func (s *CategoryService) Create(ctx context.Context, name string) (*ports.CategoryDTO, error) {
	category := &domain.Category{Name: name}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.logger.Info().Int("category_id", category.ID).Str("name", name).Msg("category created")

	dto := toCategoryDTO(category)
	return &dto, nil
}

func (s *CategoryService) Update(ctx context.Context, id int, name string) (*ports.CategoryDTO, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}

	category.Name = name
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	// Re-read with products so the DTO carries the current count.
	updated, err := s.categories.GetWithProducts(ctx, id)
	if err != nil || updated == nil {
		dto := toCategoryDTO(category)
		return &dto, nil
	}
	dto := toCategoryDTO(updated)
	return &dto, nil
}

// Delete removes a category unless it still owns products. The check and the
// delete are separate storage calls; a product inserted in between trips the
// store's restrict constraint, which the repository reports as the same
// conflict.
func (s *CategoryService) Delete(ctx context.Context, id int) error {
	category, err := s.categories.GetWithProducts(ctx, id)
	if err != nil {
		return fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return domain.ErrCategoryNotFound
	}
	if len(category.Products) > 0 {
		return domain.ErrCategoryHasProducts
	}

	if err := s.categories.Delete(ctx, category); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	s.logger.Info().Int("category_id", id).Msg("category deleted")
	return nil
}

func toCategoryDTO(category *domain.Category) ports.CategoryDTO {
	return ports.CategoryDTO{
		ID:           category.ID,
		Name:         category.Name,
		ProductCount: len(category.Products),
	}
}

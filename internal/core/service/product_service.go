package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/inventoryapi/inventory-system/internal/core/domain"
	"github.com/inventoryapi/inventory-system/internal/core/ports"
)

// ProductService validates category and creator references before mutation.
type ProductService struct {
	products   ports.ProductRepository
	categories ports.CategoryRepository
	users      ports.UserRepository
	logger     zerolog.Logger
}

func NewProductService(products ports.ProductRepository, categories ports.CategoryRepository, users ports.UserRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{products: products, categories: categories, users: users, logger: logger}
}

func (s *ProductService) GetAll(ctx context.Context) ([]ports.ProductDTO, error) {
	products, err := s.products.GetAllWithDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return toProductDTOs(products), nil
}

func (s *ProductService) GetByID(ctx context.Context, id int) (*ports.ProductDTO, error) {
	product, err := s.products.GetWithDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	dto := toProductDTO(product)
	return &dto, nil
}

func (s *ProductService) GetByCategory(ctx context.Context, categoryID int) ([]ports.ProductDTO, error) {
	products, err := s.products.GetByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	return toProductDTOs(products), nil
}

func (s *ProductService) GetLowStock(ctx context.Context, threshold int) ([]ports.ProductDTO, error) {
	if threshold <= 0 {
		threshold = ports.DefaultLowStockThreshold
	}
	products, err := s.products.GetLowStock(ctx, threshold)
	if err != nil {
		return nil, fmt.Errorf("list low-stock products: %w", err)
	}
	return toProductDTOs(products), nil
}

// Create persists a new product attributed to creatorID. Both the category
// and the creator must resolve first.
func (s *ProductService) Create(ctx context.Context, in ports.ProductInput, creatorID int) (*ports.ProductDTO, error) {
	category, err := s.categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("resolve category: %w", err)
	}
	if category == nil {
		return nil, domain.ErrInvalidCategory
	}

	creator, err := s.users.GetByID(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("resolve creator: %w", err)
	}
	if creator == nil {
		return nil, domain.ErrInvalidCreator
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:            in.Name,
		Description:     in.Description,
		StockQuantity:   in.StockQuantity,
		Price:           in.Price,
		PictureURL:      in.PictureURL,
		CategoryID:      in.CategoryID,
		CreatedByUserID: &creatorID,
		CreatedAt:       now,
		LastUpdatedAt:   now,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	product.Category = category
	product.CreatedByUser = creator

	s.logger.Info().Int("product_id", product.ID).Str("name", product.Name).Int("category_id", category.ID).Msg("product created")

	dto := toProductDTO(product)
	return &dto, nil
}

// Update replaces the mutable fields and refreshes LastUpdatedAt. The new
// category reference must resolve; creator attribution is never touched.
func (s *ProductService) Update(ctx context.Context, id int, in ports.ProductInput) (*ports.ProductDTO, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	category, err := s.categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("resolve category: %w", err)
	}
	if category == nil {
		return nil, domain.ErrInvalidCategory
	}

	product.Name = in.Name
	product.Description = in.Description
	product.StockQuantity = in.StockQuantity
	product.Price = in.Price
	product.PictureURL = in.PictureURL
	product.CategoryID = in.CategoryID
	product.LastUpdatedAt = time.Now().UTC()

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	product.Category = category
	if product.CreatedByUserID != nil {
		product.CreatedByUser, _ = s.users.GetByID(ctx, *product.CreatedByUserID)
	}

	s.logger.Info().Int("product_id", id).Msg("product updated")

	dto := toProductDTO(product)
	return &dto, nil
}

// Delete removes a product once existence is confirmed. Products carry no
// dependent-entity guard.
func (s *ProductService) Delete(ctx context.Context, id int) error {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return domain.ErrProductNotFound
	}

	if err := s.products.Delete(ctx, product); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	s.logger.Info().Int("product_id", id).Msg("product deleted")
	return nil
}

func toProductDTO(product *domain.Product) ports.ProductDTO {
	dto := ports.ProductDTO{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		StockQuantity: product.StockQuantity,
		Price:         product.Price,
		PictureURL:    product.PictureURL,
		CategoryID:    product.CategoryID,
		CreatedAt:     product.CreatedAt,
		LastUpdatedAt: product.LastUpdatedAt,
	}
	if product.Category != nil {
		dto.CategoryName = product.Category.Name
	}
	if product.CreatedByUser != nil {
		dto.CreatedByUser = product.CreatedByUser.Username
	}
	return dto
}

func toProductDTOs(products []domain.Product) []ports.ProductDTO {
	dtos := make([]ports.ProductDTO, 0, len(products))
	for i := range products {
		dtos = append(dtos, toProductDTO(&products[i]))
	}
	return dtos
}

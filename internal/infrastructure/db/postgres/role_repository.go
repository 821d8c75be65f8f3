package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/inventoryapi/inventory-system/internal/core/domain"
)

type RoleRepository struct {
	repository[domain.Role]
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{repository[domain.Role]{db: db}}
}

func (r *RoleRepository) GetByID(ctx context.Context, id string) (*domain.Role, error) {
	return r.getByID(ctx, id)
}

func (r *RoleRepository) GetAll(ctx context.Context) ([]domain.Role, error) {
	return r.getAll(ctx)
}

func (r *RoleRepository) Create(ctx context.Context, role *domain.Role) error {
	if err := r.create(ctx, role); err != nil {
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

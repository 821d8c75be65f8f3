package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/inventoryapi/inventory-system/internal/core/domain"
)

type UserRepository struct {
	repository[domain.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{repository[domain.User]{db: db}}
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	return r.getByID(ctx, id)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Preload("Role").First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) Exists(ctx context.Context, username, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return count > 0, nil
}

// Create inserts the account. Constraint violations become domain errors:
// a duplicate username or email is the conflict the pre-check raced against,
// and a dangling role reference means the role vanished after resolution.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	err := r.create(ctx, user)
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrUserExists
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.ErrInvalidRole
	case err != nil:
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

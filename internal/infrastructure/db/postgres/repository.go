package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// repository is the generic storage access shared by the entity repositories
// through composition. Single-row lookups report absence as (nil, nil);
// callers decide which domain error a missing row means.
type repository[T any] struct {
	db *gorm.DB
}

func (r *repository[T]) getByID(ctx context.Context, id any) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *repository[T]) getAll(ctx context.Context) ([]T, error) {
	var entities []T
	if err := r.db.WithContext(ctx).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *repository[T]) create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *repository[T]) update(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

func (r *repository[T]) remove(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Delete(entity).Error
}

package repository

import (
	"context"
	"grocery-bazaar-backend/internal/model"

	"gorm.io/gorm"
)

type CartRepository interface {
	Create(ctx context.Context, item *model.CartItem) error
	ListByEmail(ctx context.Context, email string) ([]*model.CartItem, error)
	Delete(ctx context.Context, itemID uint) (int64, error)
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{
		db: db,
	}
}

func (r *cartRepoImpl) Create(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepoImpl) ListByEmail(ctx context.Context, email string) ([]*model.CartItem, error) {
	var items []*model.CartItem
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *cartRepoImpl) Delete(ctx context.Context, itemID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ?", itemID).
		Delete(&model.CartItem{})

	return result.RowsAffected, result.Error
}

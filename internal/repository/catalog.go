package repository

import (
	"context"
	"grocery-bazaar-backend/internal/model"

	"gorm.io/gorm"
)

// CatalogRepository serves the read-only storefront collections. The rows are
// seeded and maintained out of band.
type CatalogRepository interface {
	ListMenu(ctx context.Context) ([]*model.MenuItem, error)
	ListReviews(ctx context.Context) ([]*model.Review, error)
}

type catalogRepoImpl struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepoImpl{
		db: db,
	}
}

func (r *catalogRepoImpl) ListMenu(ctx context.Context) ([]*model.MenuItem, error) {
	var items []*model.MenuItem
	err := r.db.WithContext(ctx).Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *catalogRepoImpl) ListReviews(ctx context.Context) ([]*model.Review, error) {
	var reviews []*model.Review
	err := r.db.WithContext(ctx).Find(&reviews).Error

	if err != nil {
		return nil, err
	}

	return reviews, nil
}

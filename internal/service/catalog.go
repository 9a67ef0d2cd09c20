package service

import (
	"context"
	"fmt"
	"grocery-bazaar-backend/internal/model"
	"grocery-bazaar-backend/internal/repository"
)

type CatalogService interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	ListProducts(ctx context.Context) ([]*model.Product, error)
	DeleteProduct(ctx context.Context, productID uint) error
	ListMenu(ctx context.Context) ([]*model.MenuItem, error)
	ListReviews(ctx context.Context) ([]*model.Review, error)
}

type catalogServiceImpl struct {
	productRepo repository.ProductRepository
	catalogRepo repository.CatalogRepository
}

func NewCatalogService(
	productRepo repository.ProductRepository,
	catalogRepo repository.CatalogRepository,
) CatalogService {
	return &catalogServiceImpl{
		productRepo: productRepo,
		catalogRepo: catalogRepo,
	}
}

func (s *catalogServiceImpl) CreateProduct(ctx context.Context, product *model.Product) error {
	return s.productRepo.Create(ctx, product)
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context) ([]*model.Product, error) {
	return s.productRepo.List(ctx)
}

func (s *catalogServiceImpl) DeleteProduct(ctx context.Context, productID uint) error {
	affected, err := s.productRepo.Delete(ctx, productID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *catalogServiceImpl) ListMenu(ctx context.Context) ([]*model.MenuItem, error) {
	return s.catalogRepo.ListMenu(ctx)
}

func (s *catalogServiceImpl) ListReviews(ctx context.Context) ([]*model.Review, error) {
	return s.catalogRepo.ListReviews(ctx)
}

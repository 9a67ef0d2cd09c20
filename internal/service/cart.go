package service

import (
	"context"
	"fmt"
	"grocery-bazaar-backend/internal/model"
	"grocery-bazaar-backend/internal/repository"
)

type CartService interface {
	Add(ctx context.Context, item *model.CartItem) error
	ListByEmail(ctx context.Context, email string) ([]*model.CartItem, error)
	Delete(ctx context.Context, itemID uint) (int64, error)
}

type cartServiceImpl struct {
	cartRepo repository.CartRepository
}

func NewCartService(
	cartRepo repository.CartRepository,
) CartService {
	return &cartServiceImpl{
		cartRepo: cartRepo,
	}
}

func (s *cartServiceImpl) Add(ctx context.Context, item *model.CartItem) error {
	if err := s.cartRepo.Create(ctx, item); err != nil {
		return fmt.Errorf("add cart item: %w", err)
	}

	return nil
}

func (s *cartServiceImpl) ListByEmail(ctx context.Context, email string) ([]*model.CartItem, error) {
	return s.cartRepo.ListByEmail(ctx, email)
}

func (s *cartServiceImpl) Delete(ctx context.Context, itemID uint) (int64, error) {
	return s.cartRepo.Delete(ctx, itemID)
}

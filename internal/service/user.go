package service

import (
	"context"
	"errors"
	"fmt"
	"grocery-bazaar-backend/internal/model"
	"grocery-bazaar-backend/internal/repository"

	"gorm.io/gorm"
)

type UserService interface {
	// Register creates the user on first sight of the email; re-registering
	// an existing email is a no-op. Returns false when the user already
	// existed.
	Register(ctx context.Context, name, email string) (*model.User, bool, error)
	List(ctx context.Context) ([]*model.User, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	PromoteToAdmin(ctx context.Context, userID uint) error
	Delete(ctx context.Context, userID uint) error
}

type userServiceImpl struct {
	userRepo repository.UserRepository
}

func NewUserService(
	userRepo repository.UserRepository,
) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
	}
}

func (s *userServiceImpl) Register(ctx context.Context, name, email string) (*model.User, bool, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("look up user: %w", err)
	}

	user := &model.User{
		Name:  name,
		Email: email,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, false, fmt.Errorf("create user: %w", err)
	}

	return user, true, nil
}

func (s *userServiceImpl) List(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userServiceImpl) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return user.Role == model.RoleAdmin, nil
}

func (s *userServiceImpl) PromoteToAdmin(ctx context.Context, userID uint) error {
	affected, err := s.userRepo.PromoteToAdmin(ctx, userID)
	if err != nil {
		return fmt.Errorf("promote user: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *userServiceImpl) Delete(ctx context.Context, userID uint) error {
	affected, err := s.userRepo.Delete(ctx, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

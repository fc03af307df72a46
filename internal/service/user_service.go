package service

import (
	"context"
	"errors"
	"fmt"

	"wallet-api/internal/core/domain"
	"wallet-api/internal/core/ports"
	"wallet-api/pkg/apperror"
)

type userService struct {
	userRepo ports.UserRepository
}

// NewUserService creates the profile service for the authenticated user.
func NewUserService(userRepo ports.UserRepository) ports.UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetMe(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get user: %w", err))
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound(domain.ErrUserNotFound)
	}
	return user, nil
}

func (s *userService) EditMe(ctx context.Context, userID int64, patch domain.UserPatch) (*domain.User, error) {
	user, err := s.userRepo.Update(ctx, userID, patch)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, apperror.ErrEmailTaken(err)
		}
		return nil, apperror.InternalError(fmt.Errorf("update user: %w", err))
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound(domain.ErrUserNotFound)
	}
	return user, nil
}

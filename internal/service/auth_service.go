package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wallet-api/internal/core/domain"
	"wallet-api/internal/core/ports"
	"wallet-api/pkg/apperror"
)

// AuthServiceImpl implements ports.AuthService.
type AuthServiceImpl struct {
	userRepo ports.UserRepository
	hashSvc  ports.HashService
	tokenSvc ports.TokenService
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	userRepo ports.UserRepository,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		userRepo: userRepo,
		hashSvc:  hashSvc,
		tokenSvc: tokenSvc,
	}
}

// Signup registers a user and returns an access token for it.
func (s *AuthServiceImpl) Signup(ctx context.Context, email, password string) (string, time.Time, error) {
	passwordHash, err := s.hashSvc.Hash(password)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: passwordHash,
	}
	// Uniqueness is enforced by the store, not by a prior lookup.
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return "", time.Time{}, apperror.ErrEmailTaken(err)
		}
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("create user: %w", err))
	}

	return s.issue(user)
}

// Signin validates credentials and returns an access token.
func (s *AuthServiceImpl) Signin(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("find user: %w", err))
	}
	if user == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(password, user.PasswordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	return s.issue(user)
}

func (s *AuthServiceImpl) issue(user *domain.User) (string, time.Time, error) {
	token, expiry, err := s.tokenSvc.Generate(user.ID, user.Email)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}
	return token, expiry, nil
}

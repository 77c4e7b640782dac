package service

import (
	"fmt"

	"contactdesk/internal/domain"
	"contactdesk/internal/validation"
	"contactdesk/pkg/logger"
)

type AuthService struct {
	repo   domain.UserRepository
	hasher domain.PasswordHasher
	logger logger.Logger
}

func NewAuthService(repo domain.UserRepository, hasher domain.PasswordHasher, logger logger.Logger) domain.AuthService {
	return &AuthService{
		repo:   repo,
		hasher: hasher,
		logger: logger,
	}
}

// Login verifies the password against the stored hash and normalizes the
// stored role. Lookup failure and bad password produce the same error so
// usernames cannot be probed.
func (s *AuthService) Login(username, password string) (*domain.User, error) {
	user, err := s.repo.FindByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("giriş yapılamadı: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.logger.Warn("Şifre eşleşmiyor", map[string]interface{}{"username": username})
		return nil, domain.ErrInvalidCredentials
	}

	role, err := domain.ParseRole(string(user.Role))
	if err != nil {
		return nil, err
	}
	user.Role = role

	s.logger.Info("Giriş başarılı", map[string]interface{}{"username": username, "role": string(role)})
	return user, nil
}

func (s *AuthService) ChangePassword(userID int64, newPassword string) error {
	if verr := validation.Password(newPassword); verr != nil {
		return verr
	}

	user, err := s.repo.FindByID(userID)
	if err != nil {
		return fmt.Errorf("şifre değiştirilemedi: %w", err)
	}
	if user == nil {
		return fmt.Errorf("%w: %d", domain.ErrUserNotFound, userID)
	}

	user.PasswordHash, err = s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("şifre işlenemedi: %w", err)
	}

	if err := s.repo.Update(user); err != nil {
		return fmt.Errorf("şifre değiştirilemedi: %w", err)
	}

	s.logger.Info("Şifre güncellendi", map[string]interface{}{"user_id": userID})
	return nil
}

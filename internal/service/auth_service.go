package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"

	"carmarketCPT/internal/config"
	"carmarketCPT/internal/models"
	"carmarketCPT/internal/repository"
)

type AuthService interface {
	Register(ctx context.Context, req repository.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// HashPassword - детерминированный sha256-хеш в hex,
// совместимый с существующим файлом данных
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func (s *authService) Register(ctx context.Context, req repository.RegisterRequest) (*models.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("все поля обязательны: %w", models.ErrValidation)
	}

	// email сравнивается строго, с учётом регистра
	existingUser, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err == nil && existingUser != nil {
		return nil, fmt.Errorf("пользователь с email %s: %w", req.Email, models.ErrEmailExists)
	}

	// роль назначается при регистрации по адресу модератора из конфига
	role := models.RoleUser
	if req.Email == s.cfg.ModeratorEmail {
		role = models.RoleModerator
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: HashPassword(req.Password),
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email и пароль обязательны: %w", models.ErrValidation)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("ошибка аутентификации: %w", models.ErrInvalidCredentials)
	}

	if user.PasswordHash != HashPassword(password) {
		return nil, fmt.Errorf("ошибка аутентификации: %w", models.ErrInvalidCredentials)
	}

	return user, nil
}

package repository

import (
	"context"
	"fmt"

	"carmarketCPT/internal/models"
	"carmarketCPT/internal/store"
)

type userRepository struct {
	store store.Store
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewUserRepository(st store.Store) UserRepository {
	return &userRepository{store: st}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return err
	}

	doc.Users = append(doc.Users, *user)

	if err := r.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("ошибка при сохранении пользователя: %w", err)
	}

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range doc.Users {
		if doc.Users[i].ID == userID {
			user := doc.Users[i]
			return &user, nil
		}
	}

	return nil, fmt.Errorf("пользователь с ID %s: %w", userID, models.ErrNotFound)
}

// GetByEmail ищет по точному совпадению email, с учётом регистра
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range doc.Users {
		if doc.Users[i].Email == email {
			user := doc.Users[i]
			return &user, nil
		}
	}

	return nil, fmt.Errorf("пользователь с email %s: %w", email, models.ErrNotFound)
}

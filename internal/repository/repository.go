package repository

import (
	"context"

	"carmarketCPT/internal/models"
	"carmarketCPT/internal/store"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type AdRepository interface {
	Create(ctx context.Context, rec *models.AdRecord) error
	GetByID(ctx context.Context, adID string) (*models.AdRecord, error)
	GetAll(ctx context.Context) ([]models.AdRecord, error)
	GetByStatus(ctx context.Context, status string) ([]models.AdRecord, error)
	GetByUserID(ctx context.Context, userID string) ([]models.AdRecord, error)
	Update(ctx context.Context, rec *models.AdRecord) error
	Delete(ctx context.Context, adID string) error
}

type PurchaseRepository interface {
	Append(ctx context.Context, user models.UserInfo, rec *models.PurchaseRecord) error
	GetByUserID(ctx context.Context, userID string) (*models.PurchaseGroup, error)
}

type StatsRepository interface {
	Counts(ctx context.Context) (models.Counts, error)
}

type Repository struct {
	User     UserRepository
	Ad       AdRepository
	Purchase PurchaseRepository
	Stats    StatsRepository
}

func NewRepository(st store.Store) *Repository {
	return &Repository{
		User:     NewUserRepository(st),
		Ad:       NewAdRepository(st),
		Purchase: NewPurchaseRepository(st),
		Stats:    NewStatsRepository(st),
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"carmarketCPT/internal/models"
	"carmarketCPT/internal/repository"
)

type PurchaseService interface {
	RecordPurchase(ctx context.Context, req repository.CreatePurchaseRequest) (*models.PurchaseRecord, error)
	ListByUser(ctx context.Context, userID string) (*models.PurchaseGroup, error)
}

type purchaseService struct {
	purchaseRepo repository.PurchaseRepository
	userRepo     repository.UserRepository
}

func NewPurchaseService(purchaseRepo repository.PurchaseRepository, userRepo repository.UserRepository) PurchaseService {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		userRepo:     userRepo,
	}
}

// RecordPurchase записывает одну позицию оформленной корзины.
// Снимок машины принимается как есть: корзина живёт на клиенте,
// и машина к этому моменту может быть уже удалена из каталога.
func (s *purchaseService) RecordPurchase(ctx context.Context, req repository.CreatePurchaseRequest) (*models.PurchaseRecord, error) {
	if req.UserID == "" || req.CarID == "" {
		return nil, fmt.Errorf("не заданы userId или carId: %w", models.ErrValidation)
	}

	owner := models.UserInfo{ID: req.UserID, Name: "Unknown", Email: "Unknown"}
	if user, err := s.userRepo.GetByID(ctx, req.UserID); err == nil {
		owner = user.Info()
	}

	rec := &models.PurchaseRecord{
		ID:           uuid.New().String(),
		CarID:        req.CarID,
		CarData:      req.CarData,
		PurchaseDate: time.Now(),
	}

	if err := s.purchaseRepo.Append(ctx, owner, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

// ListByUser возвращает группу покупок пользователя;
// если покупок не было - пустую группу, а не ошибку
func (s *purchaseService) ListByUser(ctx context.Context, userID string) (*models.PurchaseGroup, error) {
	group, err := s.purchaseRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return &models.PurchaseGroup{
				User:      models.UserInfo{ID: userID},
				Purchases: []models.PurchaseRecord{},
			}, nil
		}
		return nil, err
	}

	return group, nil
}

package repository

import (
	"context"
	"fmt"

	"carmarketCPT/internal/models"
	"carmarketCPT/internal/store"
)

type purchaseRepository struct {
	store store.Store
}

type CreatePurchaseRequest struct {
	UserID  string    `json:"userId"`
	CarID   string    `json:"carId"`
	CarData models.Ad `json:"carData"`
}

func NewPurchaseRepository(st store.Store) PurchaseRepository {
	return &purchaseRepository{store: st}
}

// Append добавляет покупку в группу пользователя,
// при первой покупке группа создаётся
func (r *purchaseRepository) Append(ctx context.Context, user models.UserInfo, rec *models.PurchaseRecord) error {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range doc.Purchases {
		if doc.Purchases[i].User.ID == user.ID {
			doc.Purchases[i].Purchases = append(doc.Purchases[i].Purchases, *rec)
			found = true
			break
		}
	}

	if !found {
		doc.Purchases = append(doc.Purchases, models.PurchaseGroup{
			User:      user,
			Purchases: []models.PurchaseRecord{*rec},
		})
	}

	if err := r.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("ошибка при сохранении покупки: %w", err)
	}

	return nil
}

func (r *purchaseRepository) GetByUserID(ctx context.Context, userID string) (*models.PurchaseGroup, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range doc.Purchases {
		if doc.Purchases[i].User.ID == userID {
			group := doc.Purchases[i]
			return &group, nil
		}
	}

	return nil, fmt.Errorf("покупки пользователя %s: %w", userID, models.ErrNotFound)
}

package repository

import (
	"context"
	"fmt"

	"carmarketCPT/internal/models"
	"carmarketCPT/internal/store"
)

type adRepository struct {
	store store.Store
}

type CreateAdRequest struct {
	Make        string  `json:"make"`
	Model       string  `json:"model"`
	Year        int     `json:"year"`
	Price       float64 `json:"price"`
	Mileage     int     `json:"mileage"`
	Color       string  `json:"color"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	UserID      string  `json:"userId"`
}

// UpdateAdRequest - частичное обновление: nil означает "поле не передано"
type UpdateAdRequest struct {
	Make        *string  `json:"make"`
	Model       *string  `json:"model"`
	Year        *int     `json:"year"`
	Price       *float64 `json:"price"`
	Mileage     *int     `json:"mileage"`
	Color       *string  `json:"color"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
}

func NewAdRepository(st store.Store) AdRepository {
	return &adRepository{store: st}
}

func (r *adRepository) Create(ctx context.Context, rec *models.AdRecord) error {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return err
	}

	doc.Ads = append(doc.Ads, *rec)

	if err := r.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("ошибка при сохранении объявления: %w", err)
	}

	return nil
}

func (r *adRepository) GetByID(ctx context.Context, adID string) (*models.AdRecord, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range doc.Ads {
		if doc.Ads[i].Ad.ID == adID {
			rec := doc.Ads[i]
			return &rec, nil
		}
	}

	return nil, fmt.Errorf("объявление с ID %s: %w", adID, models.ErrNotFound)
}

func (r *adRepository) GetAll(ctx context.Context) ([]models.AdRecord, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	return doc.Ads, nil
}

func (r *adRepository) GetByStatus(ctx context.Context, status string) ([]models.AdRecord, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.AdRecord, 0)
	for _, rec := range doc.Ads {
		if rec.Ad.Status == status {
			filtered = append(filtered, rec)
		}
	}

	return filtered, nil
}

func (r *adRepository) GetByUserID(ctx context.Context, userID string) ([]models.AdRecord, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.AdRecord, 0)
	for _, rec := range doc.Ads {
		if rec.User.ID == userID {
			filtered = append(filtered, rec)
		}
	}

	return filtered, nil
}

func (r *adRepository) Update(ctx context.Context, rec *models.AdRecord) error {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return err
	}

	for i := range doc.Ads {
		if doc.Ads[i].Ad.ID == rec.Ad.ID {
			doc.Ads[i] = *rec

			if err := r.store.Save(ctx, doc); err != nil {
				return fmt.Errorf("ошибка при обновлении объявления: %w", err)
			}
			return nil
		}
	}

	return fmt.Errorf("объявление с ID %s: %w", rec.Ad.ID, models.ErrNotFound)
}

func (r *adRepository) Delete(ctx context.Context, adID string) error {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return err
	}

	for i := range doc.Ads {
		if doc.Ads[i].Ad.ID == adID {
			doc.Ads = append(doc.Ads[:i], doc.Ads[i+1:]...)

			if err := r.store.Save(ctx, doc); err != nil {
				return fmt.Errorf("ошибка при удалении объявления: %w", err)
			}
			return nil
		}
	}

	return fmt.Errorf("объявление с ID %s: %w", adID, models.ErrNotFound)
}

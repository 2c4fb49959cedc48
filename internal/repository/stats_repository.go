package repository

import (
	"context"
	"fmt"

	"carmarketCPT/internal/models"
	"carmarketCPT/internal/store"
)

type statsRepository struct {
	store store.Store
}

func NewStatsRepository(st store.Store) StatsRepository {
	return &statsRepository{store: st}
}

func (r *statsRepository) Counts(ctx context.Context) (models.Counts, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return models.Counts{}, fmt.Errorf("ошибка при подсчёте записей: %w", err)
	}

	return models.Counts{
		Users:     len(doc.Users),
		Ads:       len(doc.Ads),
		Purchases: len(doc.Purchases),
	}, nil
}

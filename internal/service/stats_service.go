package service

import (
	"context"

	"carmarketCPT/internal/models"
	"carmarketCPT/internal/repository"
)

type StatsService interface {
	GetCounts(ctx context.Context) (models.Counts, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (t *statsService) GetCounts(ctx context.Context) (models.Counts, error) {
	counts, err := t.statsRepo.Counts(ctx)
	if err != nil {
		return models.Counts{}, err
	}

	return counts, nil
}

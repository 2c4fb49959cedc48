package service

import (
	"carmarketCPT/internal/config"
	"carmarketCPT/internal/repository"
	"carmarketCPT/internal/storage"
)

type Service struct {
	Auth     AuthService
	Ad       AdService
	Purchase PurchaseService
	Stats    StatsService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:     NewAuthService(rep.User, cfg),
		Ad:       NewAdService(rep.Ad, rep.User, storage, cfg),
		Purchase: NewPurchaseService(rep.Purchase, rep.User),
		Stats:    NewStatsService(rep.Stats),
	}
}

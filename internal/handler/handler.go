package handlers

import (
	"github.com/go-playground/validator/v10"

	"carmarketCPT/internal/config"
	"carmarketCPT/internal/service"
)

type Handlers struct {
	AuthService     service.AuthService
	AdService       service.AdService
	PurchaseService service.PurchaseService
	StatsService    service.StatsService
	Cfg             *config.Config
	Validate        *validator.Validate
}

func NewHandlers(service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:     service.Auth,
		AdService:       service.Ad,
		PurchaseService: service.Purchase,
		StatsService:    service.Stats,
		Cfg:             config,
		Validate:        validator.New(),
	}
}

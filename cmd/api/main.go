package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"carmarketCPT/cmd/app"
	"carmarketCPT/internal/config"
	handlers "carmarketCPT/internal/handler"
	"carmarketCPT/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	_, services := app.App(cfg)

	handler := handlers.NewHandlers(services, cfg)

	r := mux.NewRouter()

	// setting up routes
	r.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", handler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)

	api.HandleFunc("/cars", handler.GetCars).Methods(http.MethodGet)
	api.HandleFunc("/cars/approved", handler.GetApprovedCars).Methods(http.MethodGet)
	api.HandleFunc("/cars/{id}", handler.GetCar).Methods(http.MethodGet)
	api.HandleFunc("/cars/{id}", handler.DeleteCar).Methods(http.MethodDelete)

	api.HandleFunc("/ads", handler.CreateAd).Methods(http.MethodPost)
	api.HandleFunc("/ads", handler.GetAds).Methods(http.MethodGet)
	api.HandleFunc("/ads/pending", handler.GetPendingAds).Methods(http.MethodGet)
	api.HandleFunc("/ads/approved", handler.GetApprovedAds).Methods(http.MethodGet)
	api.HandleFunc("/ads/search", handler.SearchAds).Methods(http.MethodGet)
	api.HandleFunc("/ads/user/{userId}", handler.GetUserAds).Methods(http.MethodGet)
	api.HandleFunc("/ads/{id}", handler.GetAd).Methods(http.MethodGet)
	api.HandleFunc("/ads/{id}", handler.UpdateAd).Methods(http.MethodPut)
	api.HandleFunc("/ads/{id}/approve", handler.ApproveAd).Methods(http.MethodPut)
	api.HandleFunc("/ads/{id}/reject", handler.RejectAd).Methods(http.MethodPut)
	api.HandleFunc("/ads/{id}", handler.DeleteAd).Methods(http.MethodDelete)

	api.HandleFunc("/purchases", handler.CreatePurchase).Methods(http.MethodPost)
	api.HandleFunc("/purchases/user/{userId}", handler.GetUserPurchases).Methods(http.MethodGet)

	api.HandleFunc("/stats", handler.Stats).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		r,
		middleware.BodyLimitMiddleware(cfg.MaxUploadSize),
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("Файл данных: %s\n", cfg.DBFile)
	fmt.Printf("Модератор: %s\n", cfg.ModeratorEmail)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"carmarketCPT/internal/models"
)

// GetCars - заглушка старого каталога, всегда пустой список;
// оставлена для совместимости со старыми клиентами
func (h *Handlers) GetCars(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, []models.Ad{}, http.StatusOK)
}

// GetApprovedCars - публичный каталог одобренных машин
func (h *Handlers) GetApprovedCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.AdService.ListApprovedCars(r.Context())
	if err != nil {
		WriteError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, cars, http.StatusOK)
}

func (h *Handlers) GetCar(w http.ResponseWriter, r *http.Request) {
	carID := mux.Vars(r)["id"]

	rec, err := h.AdService.GetByID(r.Context(), carID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			WriteError(w, "Car not found", http.StatusNotFound)
		} else {
			WriteError(w, "Server error", http.StatusInternalServerError)
		}
		return
	}

	// каталог отдаёт машину без снимка владельца
	writeSuccess(w, rec.Ad, http.StatusOK)
}

func (h *Handlers) DeleteCar(w http.ResponseWriter, r *http.Request) {
	carID := mux.Vars(r)["id"]

	if err := h.AdService.DeleteAd(r.Context(), carID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			WriteError(w, "Car not found", http.StatusNotFound)
		} else {
			WriteError(w, "Server error", http.StatusInternalServerError)
		}
		return
	}

	writeSuccess(w, map[string]string{"message": "Car deleted successfully"}, http.StatusOK)
}

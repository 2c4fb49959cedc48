package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"carmarketCPT/internal/models"
	"carmarketCPT/internal/repository"
)

func (h *Handlers) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	var req repository.CreatePurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	rec, err := h.PurchaseService.RecordPurchase(r.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			WriteError(w, "User ID and car ID are required", http.StatusBadRequest)
		} else {
			WriteError(w, "Server error", http.StatusInternalServerError)
		}
		return
	}

	writeSuccess(w, rec, http.StatusCreated)
}

func (h *Handlers) GetUserPurchases(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	group, err := h.PurchaseService.ListByUser(r.Context(), userID)
	if err != nil {
		WriteError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, group, http.StatusOK)
}

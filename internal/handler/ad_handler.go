package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"carmarketCPT/internal/models"
	"carmarketCPT/internal/repository"
)

func (h *Handlers) CreateAd(w http.ResponseWriter, r *http.Request) {
	// клиентское поле status в запросе игнорируется:
	// новое объявление всегда попадает на модерацию
	var req struct {
		Make        string  `json:"make" validate:"required"`
		Model       string  `json:"model" validate:"required"`
		Year        int     `json:"year" validate:"required"`
		Price       float64 `json:"price" validate:"required"`
		Mileage     int     `json:"mileage" validate:"required"`
		Color       string  `json:"color" validate:"required"`
		Description string  `json:"description"`
		Image       string  `json:"image"`
		UserID      string  `json:"userId" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Required fields missing", http.StatusBadRequest)
		return
	}

	serviceReq := repository.CreateAdRequest{
		Make:        req.Make,
		Model:       req.Model,
		Year:        req.Year,
		Price:       req.Price,
		Mileage:     req.Mileage,
		Color:       req.Color,
		Description: req.Description,
		Image:       req.Image,
		UserID:      req.UserID,
	}

	rec, err := h.AdService.CreateAd(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			WriteError(w, "Required fields missing", http.StatusBadRequest)
		} else {
			WriteError(w, "Server error", http.StatusInternalServerError)
		}
		return
	}

	writeSuccess(w, rec, http.StatusCreated)
}

func (h *Handlers) GetAds(w http.ResponseWriter, r *http.Request) {
	records, err := h.AdService.ListAll(r.Context())
	if err != nil {
		WriteError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, records, http.StatusOK)
}

func (h *Handlers) GetPendingAds(w http.ResponseWriter, r *http.Request) {
	records, err := h.AdService.ListByStatus(r.Context(), models.StatusPending)
	if err != nil {
		WriteError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, records, http.StatusOK)
}

func (h *Handlers) GetApprovedAds(w http.ResponseWriter, r *http.Request) {
	records, err := h.AdService.ListByStatus(r.Context(), models.StatusApproved)
	if err != nil {
		WriteError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, records, http.StatusOK)
}

func (h *Handlers) SearchAds(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	records, err := h.AdService.Search(r.Context(), query)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			WriteError(w, "Search query is required", http.StatusBadRequest)
		} else {
			WriteError(w, "Server error", http.StatusInternalServerError)
		}
		return
	}

	writeSuccess(w, records, http.StatusOK)
}

func (h *Handlers) GetUserAds(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	records, err := h.AdService.ListByUser(r.Context(), userID)
	if err != nil {
		WriteError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, records, http.StatusOK)
}

func (h *Handlers) GetAd(w http.ResponseWriter, r *http.Request) {
	adID := mux.Vars(r)["id"]

	rec, err := h.AdService.GetByID(r.Context(), adID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			WriteError(w, "Ad not found", http.StatusNotFound)
		} else {
			WriteError(w, "Server error", http.StatusInternalServerError)
		}
		return
	}

	writeSuccess(w, rec, http.StatusOK)
}

func (h *Handlers) UpdateAd(w http.ResponseWriter, r *http.Request) {
	adID := mux.Vars(r)["id"]

	var req repository.UpdateAdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	rec, err := h.AdService.EditAd(r.Context(), adID, req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			WriteError(w, "Ad not found", http.StatusNotFound)
		} else {
			WriteError(w, "Server error", http.StatusInternalServerError)
		}
		return
	}

	writeSuccess(w, rec, http.StatusOK)
}

func (h *Handlers) ApproveAd(w http.ResponseWriter, r *http.Request) {
	adID := mux.Vars(r)["id"]

	rec, err := h.AdService.Approve(r.Context(), adID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			WriteError(w, "Ad not found", http.StatusNotFound)
		} else {
			WriteError(w, "Server error", http.StatusInternalServerError)
		}
		return
	}

	writeSuccess(w, rec, http.StatusOK)
}

func (h *Handlers) RejectAd(w http.ResponseWriter, r *http.Request) {
	adID := mux.Vars(r)["id"]

	rec, err := h.AdService.Reject(r.Context(), adID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			WriteError(w, "Ad not found", http.StatusNotFound)
		} else {
			WriteError(w, "Server error", http.StatusInternalServerError)
		}
		return
	}

	writeSuccess(w, rec, http.StatusOK)
}

func (h *Handlers) DeleteAd(w http.ResponseWriter, r *http.Request) {
	adID := mux.Vars(r)["id"]

	if err := h.AdService.DeleteAd(r.Context(), adID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			WriteError(w, "Ad not found", http.StatusNotFound)
		} else {
			WriteError(w, "Server error", http.StatusInternalServerError)
		}
		return
	}

	writeSuccess(w, map[string]string{"message": "Ad deleted successfully"}, http.StatusOK)
}

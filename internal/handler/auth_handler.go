package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"carmarketCPT/internal/models"
	"carmarketCPT/internal/repository"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type AuthResponse struct {
	User    UserResponse `json:"user"`
	Message string       `json:"message"`
}

// toUserResponse - публичная часть пользователя, без хеша пароля
func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "All fields are required", http.StatusBadRequest)
		return
	}

	serviceReq := repository.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	user, err := h.AuthService.Register(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmailExists):
			WriteError(w, "Email already exists", http.StatusBadRequest)
		case errors.Is(err, models.ErrValidation):
			WriteError(w, "All fields are required", http.StatusBadRequest)
		default:
			WriteError(w, "Server error", http.StatusInternalServerError)
		}
		return
	}

	writeSuccess(w, AuthResponse{
		User:    toUserResponse(user),
		Message: "Registration successful",
	}, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrValidation):
			WriteError(w, "Email and password are required", http.StatusBadRequest)
		case errors.Is(err, models.ErrInvalidCredentials):
			WriteError(w, "Invalid credentials", http.StatusUnauthorized)
		default:
			WriteError(w, "Server error", http.StatusInternalServerError)
		}
		return
	}

	writeSuccess(w, AuthResponse{
		User:    toUserResponse(user),
		Message: "Login successful",
	}, http.StatusOK)
}

package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"health-assistant/internal/auth"
)

type Handler struct {
	svc    Service
	tokens *auth.TokenManager
}

func NewHandler(svc Service, tokens *auth.TokenManager) *Handler {
	return &Handler{svc: svc, tokens: tokens}
}

type loginRequest struct {
	Name string `json:"name"`
}

type loginResponse struct {
	Token     string `json:"token"`
	User      *User  `json:"user"`
	IsNewUser bool   `json:"isNewUser"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	u, isNew, err := h.svc.Login(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, ErrEmptyName) {
			http.Error(w, "Name is required", http.StatusBadRequest)
			return
		}
		http.Error(w, "Login failed", http.StatusInternalServerError)
		return
	}

	token, err := h.tokens.Issue(u.ID, u.Name)
	if err != nil {
		http.Error(w, "Login failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(loginResponse{Token: token, User: u, IsNewUser: isNew})
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "Authorization required", http.StatusUnauthorized)
		return
	}

	u, err := h.svc.Profile(r.Context(), identity.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load profile", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(u)
}

type updateProfileRequest struct {
	Name        string `json:"name"`
	Language    string `json:"language"`
	ProfileInfo string `json:"profile_info"`
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "Authorization required", http.StatusUnauthorized)
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	err := h.svc.UpdateProfile(r.Context(), identity.ID, req.Name, req.Language, req.ProfileInfo)
	if err != nil {
		if errors.Is(err, ErrEmptyName) {
			http.Error(w, "Name is required", http.StatusBadRequest)
			return
		}
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Profile updated successfully"})
}

func RegisterRoutes(r chi.Router, h *Handler, tm *auth.TokenManager) {
	r.Post("/auth/login", h.Login)
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(tm))
		r.Get("/profile", h.GetProfile)
		r.Post("/profile", h.UpdateProfile)
	})
}

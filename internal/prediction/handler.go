package prediction

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"health-assistant/internal/auth"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type predictRequest struct {
	SymptomsText string `json:"symptoms_text"`
}

func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "Authorization required", http.StatusUnauthorized)
		return
	}

	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	result, err := h.svc.Predict(r.Context(), identity.ID, req.SymptomsText)
	if err != nil {
		if errors.Is(err, ErrEmptySymptoms) {
			http.Error(w, "Symptoms text required", http.StatusBadRequest)
			return
		}
		http.Error(w, "Prediction failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func RegisterRoutes(r chi.Router, h *Handler, tm *auth.TokenManager) {
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(tm))
		r.Post("/predict", h.Predict)
	})
}

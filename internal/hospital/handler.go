package hospital

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const helpline = "911 or local equivalent 1-800-HEALTH"

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

type emergencyResponse struct {
	Hospitals []Hospital `json:"hospitals"`
	Helpline  string     `json:"helpline"`
}

func (h *Handler) Emergency(w http.ResponseWriter, r *http.Request) {
	specialization := r.URL.Query().Get("type")

	hospitals, err := h.repo.List(r.Context(), specialization)
	if err != nil {
		http.Error(w, "Failed to load hospitals", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(emergencyResponse{Hospitals: hospitals, Helpline: helpline})
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/emergency", h.Emergency)
}

package analytics

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

type dashboardResponse struct {
	DiseaseTrends         map[string]int `json:"disease_trends"`
	HighRiskZones         []string       `json:"high_risk_zones"`
	TotalPredictionsToday int            `json:"total_predictions_today"`
}

// Dashboard serves the static aggregates backing the dashboard page.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dashboardResponse{
		DiseaseTrends: map[string]int{
			"Cold/Flu":       45,
			"Allergy":        25,
			"Skin Infection": 15,
			"Migraine":       15,
		},
		HighRiskZones:         []string{"Downtown", "Northside"},
		TotalPredictionsToday: 124,
	})
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/analytics", h.Dashboard)
}

package chat

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"health-assistant/internal/auth"
)

// Canned assistant replies per display language.
var replies = map[string]string{
	"Spanish": "¿En qué más puedo ayudarte? Recuerda que el AI puede analizar tus síntomas para mayor precisión.",
	"French":  "Comment puis-je vous aider ? N'oubliez pas que l'IA peut analyser vos symptômes pour plus de précision.",
	"Hindi":   "मैं आपकी कैसे मदद कर सकता हूँ? याद रखें कि एआई अधिक सटीकता के लिए आपके लक्षणों का विश्लेषण कर सकता है।",
}

const defaultReply = "How else can I assist you? Remember that the AI can analyze your symptoms for greater accuracy."

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

type chatRequest struct {
	Message  string `json:"message"`
	Language string `json:"language"`
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	reply, ok := replies[req.Language]
	if !ok {
		reply = defaultReply
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"reply": reply})
}

func RegisterRoutes(r chi.Router, h *Handler, tm *auth.TokenManager) {
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(tm))
		r.Post("/chat", h.Chat)
	})
}

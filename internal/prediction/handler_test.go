package prediction

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"health-assistant/internal/auth"
)

func newTestRouter(t *testing.T, repo Repository, model ModelClient) (chi.Router, string) {
	t.Helper()
	tokens := auth.NewTokenManager("test-secret", 24*time.Hour)
	token, err := tokens.Issue(1, "Alice")
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}

	handler := NewHandler(NewService(repo, model, zerolog.Nop()))
	r := chi.NewRouter()
	RegisterRoutes(r, handler, tokens)
	return r, token
}

func TestPredictEndpoint(t *testing.T) {
	repo := &fakeRepo{}
	model := &fakeModel{result: &Result{
		Disease:     "Flu",
		Severity:    "Mild",
		Medications: []string{"Rest", "Fluids"},
	}}
	r, token := newTestRouter(t, repo, model)

	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(`{"symptoms_text":"I have a fever"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp Result
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Disease != "Flu" || resp.Severity != "Mild" || len(resp.Medications) != 2 {
		t.Fatalf("unexpected response %+v", resp)
	}
	if len(repo.symptoms) != 1 || len(repo.predictions) != 1 {
		t.Fatalf("expected one symptom and one prediction row, got %d/%d",
			len(repo.symptoms), len(repo.predictions))
	}
}

func TestPredictEndpointEmptyText(t *testing.T) {
	repo := &fakeRepo{}
	r, token := newTestRouter(t, repo, &fakeModel{})

	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(`{"symptoms_text":" "}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if len(repo.symptoms) != 0 {
		t.Fatalf("expected no symptom rows, got %d", len(repo.symptoms))
	}
}

func TestPredictEndpointRequiresToken(t *testing.T) {
	r, _ := newTestRouter(t, &fakeRepo{}, &fakeModel{})

	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(`{"symptoms_text":"fever"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

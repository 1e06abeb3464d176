package hospital

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeRepo struct {
	hospitals []Hospital
}

func (f *fakeRepo) List(ctx context.Context, specialization string) ([]Hospital, error) {
	if specialization == "" {
		return f.hospitals, nil
	}
	filtered := []Hospital{}
	for _, h := range f.hospitals {
		if h.Specialization == specialization {
			filtered = append(filtered, h)
		}
	}
	return filtered, nil
}

func (f *fakeRepo) Count(ctx context.Context) (int, error) { return len(f.hospitals), nil }

func (f *fakeRepo) SeedDefaults(ctx context.Context) error { return nil }

func testRepo() *fakeRepo {
	return &fakeRepo{hospitals: []Hospital{
		{ID: 1, Name: "City General Hospital", Location: "Downtown", Specialization: "General"},
		{ID: 2, Name: "Heart Center", Location: "Eastside", Specialization: "Cardiologist"},
	}}
}

func TestEmergencyListsAllHospitals(t *testing.T) {
	h := NewHandler(testRepo())

	req := httptest.NewRequest(http.MethodGet, "/emergency", nil)
	rec := httptest.NewRecorder()
	h.Emergency(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp emergencyResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Hospitals) != 2 {
		t.Fatalf("expected 2 hospitals, got %d", len(resp.Hospitals))
	}
	if resp.Helpline != "911 or local equivalent 1-800-HEALTH" {
		t.Fatalf("unexpected helpline %q", resp.Helpline)
	}
}

func TestEmergencyFiltersBySpecialization(t *testing.T) {
	h := NewHandler(testRepo())

	req := httptest.NewRequest(http.MethodGet, "/emergency?type=Cardiologist", nil)
	rec := httptest.NewRecorder()
	h.Emergency(rec, req)

	var resp emergencyResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Hospitals) != 1 || resp.Hospitals[0].Name != "Heart Center" {
		t.Fatalf("expected only the Heart Center, got %+v", resp.Hospitals)
	}
}

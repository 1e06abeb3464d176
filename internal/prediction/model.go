package prediction

import "time"

// SymptomRecord captures what the user asked, independent of whether the
// model managed to answer.
type SymptomRecord struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	SymptomText string    `json:"symptom_text" db:"symptom_text"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Prediction is a successful model answer linked to the symptom record
// that prompted it.
type Prediction struct {
	ID          int64    `json:"id" db:"id"`
	UserID      int64    `json:"user_id" db:"user_id"`
	SymptomID   int64    `json:"symptom_id" db:"symptom_id"`
	Disease     string   `json:"predicted_disease" db:"predicted_disease"`
	Severity    string   `json:"severity" db:"severity"`
	Medications []string `json:"medications" db:"medications"`
}

// Result is the wire shape of a diagnosis, shared with the model service.
type Result struct {
	Disease     string   `json:"disease"`
	Severity    string   `json:"severity"`
	Medications []string `json:"medications"`
}

// Fallback returns the substitute diagnosis served when the model
// service cannot be used.
func Fallback() *Result {
	return &Result{
		Disease:     "Unknown - Model Offline",
		Severity:    "Moderate",
		Medications: []string{"Consult a doctor"},
	}
}

package prediction

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

type Repository interface {
	RecordSymptom(ctx context.Context, userID int64, text string) (*SymptomRecord, error)
	RecordPrediction(ctx context.Context, userID, symptomID int64, r *Result) (*Prediction, error)
}

type postgresRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) RecordSymptom(ctx context.Context, userID int64, text string) (*SymptomRecord, error) {
	query := `
		INSERT INTO symptoms (user_id, symptom_text)
		VALUES ($1, $2)
		RETURNING id, user_id, symptom_text, created_at
	`
	var rec SymptomRecord
	err := r.db.QueryRowContext(ctx, query, userID, text).Scan(
		&rec.ID,
		&rec.UserID,
		&rec.SymptomText,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting symptom: %w", err)
	}
	return &rec, nil
}

func (r *postgresRepo) RecordPrediction(ctx context.Context, userID, symptomID int64, res *Result) (*Prediction, error) {
	medsJSON, err := json.Marshal(res.Medications)
	if err != nil {
		return nil, fmt.Errorf("marshalling medications: %w", err)
	}

	query := `
		INSERT INTO predictions (user_id, symptom_id, predicted_disease, severity, medications)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	p := Prediction{
		UserID:      userID,
		SymptomID:   symptomID,
		Disease:     res.Disease,
		Severity:    res.Severity,
		Medications: res.Medications,
	}
	err = r.db.QueryRowContext(ctx, query, userID, symptomID, res.Disease, res.Severity, medsJSON).Scan(&p.ID)
	if err != nil {
		return nil, fmt.Errorf("inserting prediction: %w", err)
	}
	return &p, nil
}

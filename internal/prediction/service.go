package prediction

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

var ErrEmptySymptoms = errors.New("symptoms text is required")

// ModelClient is the external disease-prediction collaborator.
type ModelClient interface {
	Predict(ctx context.Context, text string) (*Result, error)
}

type Service interface {
	Predict(ctx context.Context, userID int64, symptomsText string) (*Result, error)
}

type service struct {
	repo   Repository
	model  ModelClient
	logger zerolog.Logger
}

func NewService(repo Repository, model ModelClient, logger zerolog.Logger) Service {
	return &service{repo: repo, model: model, logger: logger}
}

// Predict logs the symptom, asks the model service for a diagnosis and
// stores the answer. The symptom row is written before the model is
// consulted so an audit record of the question exists even when the
// answer never arrives. Model failures of any kind degrade to a fixed
// fallback diagnosis instead of failing the request; fallbacks are not
// stored as predictions, so symptom rows without a matching prediction
// row mark a model outage.
func (s *service) Predict(ctx context.Context, userID int64, symptomsText string) (*Result, error) {
	symptomsText = strings.TrimSpace(symptomsText)
	if symptomsText == "" {
		return nil, ErrEmptySymptoms
	}

	symptom, err := s.repo.RecordSymptom(ctx, userID, symptomsText)
	if err != nil {
		return nil, fmt.Errorf("recording symptom: %w", err)
	}

	result, err := s.model.Predict(ctx, symptomsText)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Int64("user_id", userID).
			Int64("symptom_id", symptom.ID).
			Msg("model service unavailable, serving fallback")
		return Fallback(), nil
	}

	if _, err := s.repo.RecordPrediction(ctx, userID, symptom.ID, result); err != nil {
		// The user already has a valid diagnosis; losing the history row
		// must not fail the request.
		s.logger.Error().
			Err(err).
			Int64("symptom_id", symptom.ID).
			Msg("failed to store prediction")
	}

	return result, nil
}

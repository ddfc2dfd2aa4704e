// Package service wires the predictor, the advisory engine and the
// prediction store into the prediction workflow.
package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/airqualityai/backend/internal/advisory"
	"github.com/airqualityai/backend/internal/domain"
	"github.com/airqualityai/backend/internal/logger"
)

// PredictionStore is re-exported from domain for convenience
type PredictionStore = domain.PredictionStore

// PredictionService runs the prediction workflow: validate, score,
// classify, advise. Stateless; one synchronous prediction per request.
type PredictionService struct {
	predictor domain.Predictor
	store     domain.PredictionStore
	log       logger.Logger
}

// NewPredictionService creates a new prediction service.
func NewPredictionService(predictor domain.Predictor, store domain.PredictionStore, log logger.Logger) *PredictionService {
	return &PredictionService{
		predictor: predictor,
		store:     store,
		log:       log,
	}
}

// Predict validates a reading, scores it and derives the health advisory.
func (s *PredictionService) Predict(ctx context.Context, reading domain.PollutantReading) (domain.PredictionResult, error) {
	if err := reading.Validate(); err != nil {
		return domain.PredictionResult{}, err
	}

	raw, err := s.predictor.Predict(ctx, reading)
	if err != nil {
		return domain.PredictionResult{}, err
	}

	// The regression can extrapolate slightly below zero for near-zero
	// inputs. Users get a floor of 0; the raw value stays in the log.
	aqi := raw
	if aqi < 0 {
		aqi = 0
	}

	category, err := advisory.Classify(aqi)
	if err != nil {
		return domain.PredictionResult{}, &domain.PredictionError{Cause: err}
	}

	result := domain.PredictionResult{
		RequestID:    uuid.NewString(),
		Reading:      reading,
		AQI:          raw,
		DisplayAQI:   roundTo(aqi, 1),
		Advisory:     advisory.Advise(category),
		ModelVersion: s.predictor.Version(),
		CreatedAt:    time.Now().UTC(),
	}

	// Log the prediction without blocking the response.
	go func() {
		saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if saveErr := s.store.SavePrediction(saveCtx, result); saveErr != nil {
			s.log.WithField("request_id", result.RequestID).
				Errorf("failed to save prediction log: %v", saveErr)
		}
	}()

	return result, nil
}

// History retrieves recent prediction log entries.
func (s *PredictionService) History(ctx context.Context, from, to time.Time) ([]domain.PredictionRecord, error) {
	return s.store.RecentPredictions(ctx, from, to)
}

// Health reports the state of the predictor and the prediction store.
func (s *PredictionService) Health(ctx context.Context) (modelErr, storeErr error) {
	return s.predictor.Health(ctx), s.store.Health(ctx)
}

// roundTo rounds a float to the given number of decimal places.
func roundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}

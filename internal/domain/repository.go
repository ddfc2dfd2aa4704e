package domain

import (
	"context"
	"time"
)

// Predictor scores a pollutant reading into an AQI estimate. Scoring is a
// pure function of its inputs; implementations are safe for concurrent use
// once constructed.
type Predictor interface {
	// Predict returns the raw AQI estimate for a reading.
	Predict(ctx context.Context, reading PollutantReading) (float64, error)

	// Health reports whether the predictor is ready to score.
	Health(ctx context.Context) error

	// Version identifies the model backing the predictor.
	Version() string
}

// PredictionStore defines the interface for prediction log persistence
// This follows the Dependency Inversion Principle - domain defines the interface
type PredictionStore interface {
	// SavePrediction persists a prediction result
	SavePrediction(ctx context.Context, result PredictionResult) error

	// RecentPredictions retrieves prediction log entries within a time range
	RecentPredictions(ctx context.Context, from, to time.Time) ([]PredictionRecord, error)

	// Health checks store connectivity
	Health(ctx context.Context) error
}

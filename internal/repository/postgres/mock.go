package postgres

import (
	"context"
	"time"

	"github.com/airqualityai/backend/internal/domain"
)

// MockStore implements domain.PredictionStore for demo mode, when no
// database is configured. Predictions are accepted and dropped.
type MockStore struct{}

// NewMockStore creates a new mock prediction store.
func NewMockStore() *MockStore {
	return &MockStore{}
}

// SavePrediction is a no-op in mock mode.
func (s *MockStore) SavePrediction(ctx context.Context, result domain.PredictionResult) error {
	return nil
}

// RecentPredictions returns a single sample entry.
func (s *MockStore) RecentPredictions(ctx context.Context, from, to time.Time) ([]domain.PredictionRecord, error) {
	return []domain.PredictionRecord{
		{
			RequestID: "00000000-0000-0000-0000-000000000000",
			Reading: domain.PollutantReading{
				PM25: 25.0,
				PM10: 50.0,
				NO2:  20.0,
				CO:   1.0,
				O3:   60.0,
			},
			AQI:          72.4,
			Category:     domain.CategoryModerate.Label(),
			Severity:     domain.CategoryModerate.Severity(),
			ModelVersion: "mock",
			CreatedAt:    time.Now().Add(-time.Hour),
		},
	}, nil
}

// Health always returns nil in mock mode.
func (s *MockStore) Health(ctx context.Context) error {
	return nil
}

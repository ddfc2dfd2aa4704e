package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/airqualityai/backend/internal/domain"
)

// Store implements domain.PredictionStore on PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a new PostgreSQL prediction store.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// SavePrediction persists one prediction result.
func (s *Store) SavePrediction(ctx context.Context, result domain.PredictionResult) error {
	query := `
		INSERT INTO prediction_logs (
			request_id, pm25, pm10, no2, co, o3,
			aqi_raw, aqi, category, severity, model_version, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := s.pool.Exec(ctx, query,
		result.RequestID,
		result.Reading.PM25, result.Reading.PM10, result.Reading.NO2, result.Reading.CO, result.Reading.O3,
		result.AQI, result.DisplayAQI,
		result.Advisory.Label, result.Advisory.Severity,
		result.ModelVersion, result.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to save prediction log: %w", err)
	}

	return nil
}

// RecentPredictions retrieves prediction log entries within a time range.
func (s *Store) RecentPredictions(ctx context.Context, from, to time.Time) ([]domain.PredictionRecord, error) {
	query := `
		SELECT request_id, pm25, pm10, no2, co, o3,
			   aqi, category, severity, model_version, created_at
		FROM prediction_logs
		WHERE created_at BETWEEN $1 AND $2
		ORDER BY created_at DESC
		LIMIT 100
	`

	rows, err := s.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query prediction logs: %w", err)
	}
	defer rows.Close()

	var results []domain.PredictionRecord
	for rows.Next() {
		var r domain.PredictionRecord
		err := rows.Scan(
			&r.RequestID,
			&r.Reading.PM25, &r.Reading.PM10, &r.Reading.NO2, &r.Reading.CO, &r.Reading.O3,
			&r.AQI, &r.Category, &r.Severity, &r.ModelVersion, &r.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan prediction row: %w", err)
		}
		results = append(results, r)
	}

	return results, nil
}

// Health checks database connectivity.
func (s *Store) Health(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}

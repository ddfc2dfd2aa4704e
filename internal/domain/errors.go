package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrModelUnavailable means the model artifact could not be loaded
	// at startup. The prediction path stays disabled until resolved.
	ErrModelUnavailable = errors.New("model artifact unavailable")

	// ErrNegativeAQI is returned when a negative AQI value reaches the
	// advisory engine. Negative values are outside its documented domain.
	ErrNegativeAQI = errors.New("negative AQI value")

	// ErrInvalidReading means a pollutant reading failed validation.
	ErrInvalidReading = errors.New("invalid pollutant reading")
)

// PredictionError reports a scoring failure for a single request. It does
// not affect subsequent requests.
type PredictionError struct {
	Cause error
}

func (e *PredictionError) Error() string {
	return fmt.Sprintf("prediction failed: %v", e.Cause)
}

func (e *PredictionError) Unwrap() error {
	return e.Cause
}

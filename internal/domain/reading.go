package domain

import (
	"fmt"
	"math"
)

// NumFeatures is the number of pollutant concentrations the model scores.
const NumFeatures = 5

// PollutantReading holds one measurement of the five pollutant
// concentrations the model was trained on. PM2.5, PM10, NO2 and O3 are
// in µg/m³, CO is in mg/m³.
type PollutantReading struct {
	PM25 float64 `json:"pm25"`
	PM10 float64 `json:"pm10"`
	NO2  float64 `json:"no2"`
	CO   float64 `json:"co"`
	O3   float64 `json:"o3"`
}

// Features returns the reading in model feature order.
func (r PollutantReading) Features() [NumFeatures]float64 {
	return [NumFeatures]float64{r.PM25, r.PM10, r.NO2, r.CO, r.O3}
}

// Validate checks that every concentration is a finite, non-negative
// number. Each field is checked independently.
func (r PollutantReading) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"pm25", r.PM25},
		{"pm10", r.PM10},
		{"no2", r.NO2},
		{"co", r.CO},
		{"o3", r.O3},
	}

	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidReading, f.name)
		}
		if f.value < 0 {
			return fmt.Errorf("%w: %s must be non-negative, got %g", ErrInvalidReading, f.name, f.value)
		}
	}

	return nil
}

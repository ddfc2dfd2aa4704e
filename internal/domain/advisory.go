package domain

import "time"

// Advisory is the health guidance derived from an AQI category. Values
// are immutable and computed on demand.
type Advisory struct {
	Category        Category `json:"-"`
	Label           string   `json:"label"`
	Severity        string   `json:"severity"`
	Description     string   `json:"description"`
	Recommendations []string `json:"recommendations"`
}

// PredictionResult is the full outcome of one prediction request.
type PredictionResult struct {
	RequestID string           `json:"request_id"`
	Reading   PollutantReading `json:"reading"`

	// AQI is the raw model output, kept for the prediction log. DisplayAQI
	// is the value shown to users: clamped at zero and rounded to one
	// decimal place.
	AQI        float64 `json:"-"`
	DisplayAQI float64 `json:"aqi"`

	Advisory     Advisory  `json:"advisory"`
	ModelVersion string    `json:"model_version"`
	CreatedAt    time.Time `json:"created_at"`
}

// PredictionRecord is one persisted prediction log entry.
type PredictionRecord struct {
	RequestID    string           `json:"request_id"`
	Reading      PollutantReading `json:"reading"`
	AQI          float64          `json:"aqi"`
	Category     string           `json:"category"`
	Severity     string           `json:"severity"`
	ModelVersion string           `json:"model_version"`
	CreatedAt    time.Time        `json:"created_at"`
}

package predictor

import (
	"context"

	"github.com/airqualityai/backend/internal/domain"
)

// Local scores readings against an artifact loaded in process.
type Local struct {
	artifact *Artifact
}

// NewLocal creates a predictor backed by a loaded artifact.
func NewLocal(artifact *Artifact) *Local {
	return &Local{artifact: artifact}
}

// Predict scores a reading. Scoring is local and deterministic, so there
// is no transient failure class to retry against.
func (p *Local) Predict(ctx context.Context, reading domain.PollutantReading) (float64, error) {
	return p.artifact.Score(reading.Features())
}

// Health always succeeds once the artifact is loaded.
func (p *Local) Health(ctx context.Context) error {
	return nil
}

// Version returns the artifact's model version.
func (p *Local) Version() string {
	return p.artifact.Version
}

// Unavailable stands in when the model artifact could not be loaded at
// startup. The server still serves its other endpoints; every prediction
// attempt reports ErrModelUnavailable instead of crashing.
type Unavailable struct {
	reason error
}

// NewUnavailable creates a predictor that refuses to score.
func NewUnavailable(reason error) *Unavailable {
	return &Unavailable{reason: reason}
}

// Predict always fails with the load-time error.
func (p *Unavailable) Predict(ctx context.Context, reading domain.PollutantReading) (float64, error) {
	return 0, p.reason
}

// Health reports the load-time error.
func (p *Unavailable) Health(ctx context.Context) error {
	return p.reason
}

// Version identifies the missing model.
func (p *Unavailable) Version() string {
	return "unavailable"
}

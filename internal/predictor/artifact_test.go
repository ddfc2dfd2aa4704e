package predictor

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airqualityai/backend/internal/domain"
)

// validArtifact is a tiny ensemble: init 40, one tree splitting on PM2.5
// at 50 with leaves 10 and 120, learning rate 0.5.
func validArtifact() Artifact {
	return Artifact{
		Version:  "aqi-gbr-1.2.0",
		Features: []string{"pm25", "pm10", "no2", "co", "o3"},
		Scaler: Scaler{
			Mean:  []float64{0, 0, 0, 0, 0},
			Scale: []float64{1, 1, 1, 1, 1},
		},
		Model: Ensemble{
			Init:         40,
			LearningRate: 0.5,
			Trees: []Tree{
				{Nodes: []Node{
					{Feature: 0, Threshold: 50, Left: 1, Right: 2},
					{Feature: -1, Value: 10},
					{Feature: -1, Value: 120},
				}},
			},
		},
	}
}

func writeArtifact(t *testing.T, a Artifact) string {
	t.Helper()

	data, err := json.Marshal(a)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "artifact.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadArtifact(t *testing.T) {
	t.Run("valid artifact", func(t *testing.T) {
		path := writeArtifact(t, validArtifact())

		a, err := LoadArtifact(path)
		require.NoError(t, err)
		assert.Equal(t, "aqi-gbr-1.2.0", a.Version)
		assert.Len(t, a.Model.Trees, 1)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadArtifact(filepath.Join(t.TempDir(), "missing.json"))
		assert.ErrorIs(t, err, domain.ErrModelUnavailable)
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "artifact.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := LoadArtifact(path)
		assert.ErrorIs(t, err, domain.ErrModelUnavailable)
	})

	t.Run("wrong feature count", func(t *testing.T) {
		a := validArtifact()
		a.Features = a.Features[:4]

		_, err := LoadArtifact(writeArtifact(t, a))
		assert.ErrorIs(t, err, domain.ErrModelUnavailable)
	})

	t.Run("zero scale", func(t *testing.T) {
		a := validArtifact()
		a.Scaler.Scale[2] = 0

		_, err := LoadArtifact(writeArtifact(t, a))
		assert.ErrorIs(t, err, domain.ErrModelUnavailable)
	})

	t.Run("no trees", func(t *testing.T) {
		a := validArtifact()
		a.Model.Trees = nil

		_, err := LoadArtifact(writeArtifact(t, a))
		assert.ErrorIs(t, err, domain.ErrModelUnavailable)
	})

	t.Run("out-of-range child index", func(t *testing.T) {
		a := validArtifact()
		a.Model.Trees[0].Nodes[0].Right = 7

		_, err := LoadArtifact(writeArtifact(t, a))
		assert.ErrorIs(t, err, domain.ErrModelUnavailable)
	})
}

func TestArtifact_Score(t *testing.T) {
	a := validArtifact()

	t.Run("routes left below threshold", func(t *testing.T) {
		got, err := a.Score([domain.NumFeatures]float64{25, 50, 20, 1, 60})
		require.NoError(t, err)
		assert.InDelta(t, 45.0, got, 1e-9) // 40 + 0.5*10
	})

	t.Run("routes right above threshold", func(t *testing.T) {
		got, err := a.Score([domain.NumFeatures]float64{75, 50, 20, 1, 60})
		require.NoError(t, err)
		assert.InDelta(t, 100.0, got, 1e-9) // 40 + 0.5*120
	})

	t.Run("applies scaler", func(t *testing.T) {
		scaled := validArtifact()
		scaled.Scaler.Mean[0] = 50
		scaled.Scaler.Scale[0] = 10

		// pm25 75 standardizes to 2.5, which is below the raw threshold 50.
		got, err := scaled.Score([domain.NumFeatures]float64{75, 50, 20, 1, 60})
		require.NoError(t, err)
		assert.InDelta(t, 45.0, got, 1e-9)
	})

	t.Run("deterministic", func(t *testing.T) {
		features := [domain.NumFeatures]float64{25, 50, 20, 1, 60}
		first, err := a.Score(features)
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			got, err := a.Score(features)
			require.NoError(t, err)
			assert.Equal(t, first, got)
		}
	})

	t.Run("cyclic node links fail scoring", func(t *testing.T) {
		cyclic := validArtifact()
		cyclic.Model.Trees[0].Nodes[0].Left = 0

		_, err := cyclic.Score([domain.NumFeatures]float64{25, 50, 20, 1, 60})

		var predErr *domain.PredictionError
		assert.ErrorAs(t, err, &predErr)
	})
}

func TestLocal(t *testing.T) {
	a := validArtifact()
	p := NewLocal(&a)

	got, err := p.Predict(context.Background(), domain.PollutantReading{PM25: 25, PM10: 50, NO2: 20, CO: 1, O3: 60})
	require.NoError(t, err)
	assert.InDelta(t, 45.0, got, 1e-9)

	assert.NoError(t, p.Health(context.Background()))
	assert.Equal(t, "aqi-gbr-1.2.0", p.Version())
}

func TestUnavailable(t *testing.T) {
	p := NewUnavailable(domain.ErrModelUnavailable)

	_, err := p.Predict(context.Background(), domain.PollutantReading{})
	assert.ErrorIs(t, err, domain.ErrModelUnavailable)

	assert.ErrorIs(t, p.Health(context.Background()), domain.ErrModelUnavailable)
	assert.Equal(t, "unavailable", p.Version())
}

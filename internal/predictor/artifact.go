// Package predictor provides the model-scoring adapters behind the
// prediction workflow: a pre-trained artifact evaluated in process, and
// a client for an external scoring service.
package predictor

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/airqualityai/backend/internal/domain"
)

// Artifact is the serialized regression model plus the input scaler it
// was trained with. The artifact is produced by the training pipeline
// outside this repository and is treated as opaque: features in, one
// scalar out. Read-only after load, safe to share across goroutines.
type Artifact struct {
	Version  string   `json:"version"`
	Features []string `json:"features"`
	Scaler   Scaler   `json:"scaler"`
	Model    Ensemble `json:"model"`
}

// Scaler holds per-feature standardization parameters.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Ensemble is a gradient-boosted set of regression trees.
type Ensemble struct {
	Init         float64 `json:"init"`
	LearningRate float64 `json:"learning_rate"`
	Trees        []Tree  `json:"trees"`
}

// Tree is a regression tree stored as a flat node array rooted at index 0.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Node is one tree node. Leaves carry Feature == -1 and a Value; internal
// nodes route on Feature <= Threshold to Left, otherwise Right.
type Node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

// LoadArtifact reads and validates a model artifact from disk. Every
// failure mode is reported as ErrModelUnavailable so the caller can
// surface a single "model unavailable" state.
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("predictor: read model artifact %s: %v: %w", path, err, domain.ErrModelUnavailable)
	}

	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("predictor: decode model artifact %s: %v: %w", path, err, domain.ErrModelUnavailable)
	}

	if err := a.validate(); err != nil {
		return nil, fmt.Errorf("predictor: invalid model artifact %s: %v: %w", path, err, domain.ErrModelUnavailable)
	}

	return &a, nil
}

func (a *Artifact) validate() error {
	if len(a.Features) != domain.NumFeatures {
		return fmt.Errorf("expected %d features, got %d", domain.NumFeatures, len(a.Features))
	}
	if len(a.Scaler.Mean) != domain.NumFeatures || len(a.Scaler.Scale) != domain.NumFeatures {
		return fmt.Errorf("scaler parameters must have %d entries", domain.NumFeatures)
	}
	for i, s := range a.Scaler.Scale {
		if s == 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			return fmt.Errorf("scaler scale[%d] is unusable: %g", i, s)
		}
	}
	if len(a.Model.Trees) == 0 {
		return fmt.Errorf("model has no trees")
	}
	for ti, t := range a.Model.Trees {
		if len(t.Nodes) == 0 {
			return fmt.Errorf("tree %d has no nodes", ti)
		}
		for ni, n := range t.Nodes {
			if n.Feature >= domain.NumFeatures {
				return fmt.Errorf("tree %d node %d references feature %d", ti, ni, n.Feature)
			}
			if n.Feature >= 0 {
				if n.Left < 0 || n.Left >= len(t.Nodes) || n.Right < 0 || n.Right >= len(t.Nodes) {
					return fmt.Errorf("tree %d node %d has out-of-range children", ti, ni)
				}
			}
		}
	}
	return nil
}

// Score standardizes the features and evaluates the ensemble.
func (a *Artifact) Score(features [domain.NumFeatures]float64) (float64, error) {
	var scaled [domain.NumFeatures]float64
	for i := range features {
		scaled[i] = (features[i] - a.Scaler.Mean[i]) / a.Scaler.Scale[i]
	}

	sum := a.Model.Init
	for ti := range a.Model.Trees {
		v, err := a.Model.Trees[ti].eval(scaled)
		if err != nil {
			return 0, &domain.PredictionError{Cause: fmt.Errorf("predictor: tree %d: %w", ti, err)}
		}
		sum += a.Model.LearningRate * v
	}

	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return 0, &domain.PredictionError{Cause: fmt.Errorf("predictor: model produced non-finite output")}
	}
	return sum, nil
}

func (t Tree) eval(features [domain.NumFeatures]float64) (float64, error) {
	idx := 0
	// A walk longer than the node count means the node links form a cycle.
	for steps := 0; steps <= len(t.Nodes); steps++ {
		n := t.Nodes[idx]
		if n.Feature < 0 {
			return n.Value, nil
		}
		if features[n.Feature] <= n.Threshold {
			idx = n.Left
		} else {
			idx = n.Right
		}
	}
	return 0, fmt.Errorf("node links do not terminate")
}

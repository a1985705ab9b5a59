// Package ml loads the pre-trained exceedance classifiers and applies them
// to encoded feature vectors.
package ml

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/ThanyaBream/IAQexceedance/internal/models"
)

// Artifact is the serialized form of one pre-trained binary classifier:
// a logistic model with one weight per feature, plus the decision
// threshold calibrated during training. The stored threshold is
// authoritative for the exceed/within-limit label; callers must not
// substitute their own cutoff.
type Artifact struct {
	Parameter string    `json:"parameter"`
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
	Threshold float64   `json:"threshold"` // probability cutoff for the exceed label
	Version   string    `json:"version,omitempty"`
}

// Classifier is a loaded binary exceedance classifier.
type Classifier interface {
	// Predict returns true when the parameter is predicted to exceed
	// its safety threshold.
	Predict(features []float64) (bool, error)
	// PredictProbability returns the exceedance probability in [0,1].
	PredictProbability(features []float64) (float64, error)
}

// LoadError reports a model artifact that is missing, unreadable, or
// incompatible with its target's feature dimensionality. Model files are
// local and static, so a load failure is never retried.
type LoadError struct {
	Parameter models.Parameter
	Path      string
	Err       error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load model for %s: %v", e.Parameter, e.Err)
	}
	return fmt.Sprintf("load model for %s from %s: %v", e.Parameter, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// LogisticClassifier applies a logistic artifact to a feature vector.
type LogisticClassifier struct {
	artifact Artifact
}

// Load reads and validates the artifact for one target parameter.
// wantDims is the fixed dimensionality of that target's feature vector.
func Load(param models.Parameter, path string, wantDims int) (*LogisticClassifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Parameter: param, Path: path, Err: err}
	}

	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, &LoadError{Parameter: param, Path: path, Err: fmt.Errorf("unmarshal artifact: %w", err)}
	}

	if artifact.Parameter != "" && artifact.Parameter != string(param) {
		return nil, &LoadError{Parameter: param, Path: path,
			Err: fmt.Errorf("artifact is for parameter %q, want %q", artifact.Parameter, param)}
	}
	if len(artifact.Weights) != wantDims {
		return nil, &LoadError{Parameter: param, Path: path,
			Err: fmt.Errorf("artifact has %d weights, want %d", len(artifact.Weights), wantDims)}
	}
	if artifact.Threshold < 0 || artifact.Threshold > 1 {
		return nil, &LoadError{Parameter: param, Path: path,
			Err: fmt.Errorf("artifact threshold %.4f outside [0,1]", artifact.Threshold)}
	}

	log.Printf("Loaded %s model from %s (threshold: %.2f)", param, path, artifact.Threshold)

	return &LogisticClassifier{artifact: artifact}, nil
}

// PredictProbability computes sigmoid(weights . features + intercept).
func (c *LogisticClassifier) PredictProbability(features []float64) (float64, error) {
	if len(features) != len(c.artifact.Weights) {
		return 0, fmt.Errorf("feature vector has %d dims, model expects %d",
			len(features), len(c.artifact.Weights))
	}

	score := c.artifact.Intercept
	for i, w := range c.artifact.Weights {
		score += w * features[i]
	}
	return sigmoid(score), nil
}

// Predict compares the exceedance probability against the artifact's own
// threshold. With a calibrated threshold the label may disagree with a
// naive 0.5 cut.
func (c *LogisticClassifier) Predict(features []float64) (bool, error) {
	p, err := c.PredictProbability(features)
	if err != nil {
		return false, err
	}
	return p >= c.artifact.Threshold, nil
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

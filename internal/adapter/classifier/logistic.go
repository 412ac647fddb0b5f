package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/remla25-team8/model-service/internal/domain/entity"
	"github.com/remla25-team8/model-service/internal/domain/service"
)

// Artifact is the serialized logistic regression model published on the hub
type Artifact struct {
	Version      string    `json:"version"`
	Vocabulary   []string  `json:"vocabulary"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
	Threshold    float64   `json:"threshold,omitempty"`
}

// ParseArtifact decodes and validates a model artifact
func ParseArtifact(data []byte) (*Artifact, error) {
	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to decode model artifact: %w", err)
	}
	if err := artifact.Validate(); err != nil {
		return nil, err
	}
	if artifact.Threshold == 0 {
		artifact.Threshold = 0.5
	}
	return &artifact, nil
}

// Validate checks the artifact shape
func (a *Artifact) Validate() error {
	if len(a.Vocabulary) == 0 {
		return errors.New("model artifact has an empty vocabulary")
	}
	if len(a.Vocabulary) != len(a.Coefficients) {
		return fmt.Errorf("model artifact has %d vocabulary terms but %d coefficients",
			len(a.Vocabulary), len(a.Coefficients))
	}
	if a.Threshold < 0 || a.Threshold >= 1 {
		return fmt.Errorf("model artifact threshold %v is outside [0,1)", a.Threshold)
	}
	return nil
}

// LogisticClassifier applies a logistic regression over bag-of-words counts
type LogisticClassifier struct {
	coefficients []float64
	intercept    float64
	threshold    float64
	version      string
}

// NewLogisticClassifier creates a classifier from a validated artifact
func NewLogisticClassifier(artifact *Artifact) service.Classifier {
	threshold := artifact.Threshold
	if threshold == 0 {
		threshold = 0.5
	}
	return &LogisticClassifier{
		coefficients: artifact.Coefficients,
		intercept:    artifact.Intercept,
		threshold:    threshold,
		version:      artifact.Version,
	}
}

// Name returns "hub"
func (c *LogisticClassifier) Name() string {
	return "hub"
}

// Version returns the artifact version
func (c *LogisticClassifier) Version() string {
	return c.version
}

// Predict returns LabelPositive when the positive probability reaches the threshold
func (c *LogisticClassifier) Predict(ctx context.Context, features *entity.FeatureVector) (entity.Label, error) {
	proba, err := c.PredictProba(ctx, features)
	if err != nil {
		return entity.LabelNegative, err
	}
	if proba[1] >= c.threshold {
		return entity.LabelPositive, nil
	}
	return entity.LabelNegative, nil
}

// PredictProba returns [1-p, p] with p = sigmoid(w.x + b)
func (c *LogisticClassifier) PredictProba(_ context.Context, features *entity.FeatureVector) ([2]float64, error) {
	if features == nil {
		return [2]float64{}, errNilFeatures
	}
	if len(features.Counts) != len(c.coefficients) {
		return [2]float64{}, fmt.Errorf("feature vector has %d values, model expects %d",
			len(features.Counts), len(c.coefficients))
	}

	z := c.intercept
	for i, w := range c.coefficients {
		z += w * features.Counts[i]
	}
	p := 1 / (1 + math.Exp(-z))

	return [2]float64{1 - p, p}, nil
}

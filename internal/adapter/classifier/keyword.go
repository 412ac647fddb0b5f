package classifier

import (
	"context"
	"errors"
	"strings"

	"github.com/remla25-team8/model-service/internal/domain/entity"
	"github.com/remla25-team8/model-service/internal/domain/service"
)

// errNilFeatures is returned when a classifier is called without features
var errNilFeatures = errors.New("feature vector is nil")

// DefaultKeyword is the term that makes the keyword classifier answer positive
const DefaultKeyword = "good"

// Mock probability table
var (
	keywordPositiveProba = [2]float64{0.1, 0.9}
	keywordNegativeProba = [2]float64{0.9, 0.1}
)

// KeywordClassifier is the placeholder model: a review is positive iff its
// terms contain the keyword.
type KeywordClassifier struct {
	keyword string
}

// NewKeywordClassifier creates a keyword classifier. An empty keyword falls
// back to DefaultKeyword.
func NewKeywordClassifier(keyword string) service.Classifier {
	if keyword == "" {
		keyword = DefaultKeyword
	}
	return &KeywordClassifier{keyword: strings.ToLower(keyword)}
}

// Name returns "mock"
func (c *KeywordClassifier) Name() string {
	return "mock"
}

// Predict returns LabelPositive when the keyword occurs in the terms
func (c *KeywordClassifier) Predict(_ context.Context, features *entity.FeatureVector) (entity.Label, error) {
	if features == nil {
		return entity.LabelNegative, errNilFeatures
	}
	if strings.Contains(strings.ToLower(strings.Join(features.Terms, " ")), c.keyword) {
		return entity.LabelPositive, nil
	}
	return entity.LabelNegative, nil
}

// PredictProba returns the fixed probability pair for the predicted label
func (c *KeywordClassifier) PredictProba(ctx context.Context, features *entity.FeatureVector) ([2]float64, error) {
	label, err := c.Predict(ctx, features)
	if err != nil {
		return [2]float64{}, err
	}
	if label == entity.LabelPositive {
		return keywordPositiveProba, nil
	}
	return keywordNegativeProba, nil
}

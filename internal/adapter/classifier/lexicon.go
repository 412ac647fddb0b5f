package classifier

import (
	"context"

	"github.com/jonreiter/govader"

	"github.com/remla25-team8/model-service/internal/domain/entity"
	"github.com/remla25-team8/model-service/internal/domain/service"
)

// LexiconClassifier scores the plain review text with VADER. The compound
// score in [-1,1] is mapped linearly onto the positive-class probability.
type LexiconClassifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewLexiconClassifier creates a VADER-backed classifier
func NewLexiconClassifier() service.Classifier {
	return &LexiconClassifier{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Name returns "lexicon"
func (c *LexiconClassifier) Name() string {
	return "lexicon"
}

// Predict returns LabelPositive for a non-negative compound score
func (c *LexiconClassifier) Predict(ctx context.Context, features *entity.FeatureVector) (entity.Label, error) {
	proba, err := c.PredictProba(ctx, features)
	if err != nil {
		return entity.LabelNegative, err
	}
	if proba[1] >= 0.5 {
		return entity.LabelPositive, nil
	}
	return entity.LabelNegative, nil
}

// PredictProba returns [1-p, p] with p = (compound+1)/2
func (c *LexiconClassifier) PredictProba(_ context.Context, features *entity.FeatureVector) ([2]float64, error) {
	if features == nil {
		return [2]float64{}, errNilFeatures
	}

	scores := c.analyzer.PolarityScores(features.Plain)
	p := entity.ClampProbability((scores.Compound + 1) / 2)

	return [2]float64{1 - p, p}, nil
}

package service

import (
	"context"

	"github.com/remla25-team8/model-service/internal/domain/entity"
)

// Classifier defines the capability set shared by every sentiment model
type Classifier interface {
	// Predict returns the class label for the features
	Predict(ctx context.Context, features *entity.FeatureVector) (entity.Label, error)

	// PredictProba returns the probabilities of class 0 and class 1
	PredictProba(ctx context.Context, features *entity.FeatureVector) ([2]float64, error)

	// Name identifies the backend in logs and metrics
	Name() string
}

// Preprocessor normalizes review text and turns it into classifier features
type Preprocessor interface {
	// Preprocess cleans and normalizes a raw review
	Preprocess(review string) (*entity.ProcessedReview, error)

	// Vectorize converts a processed review into a feature vector
	Vectorize(review *entity.ProcessedReview) (*entity.FeatureVector, error)
}

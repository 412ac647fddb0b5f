package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/remla25-team8/model-service/internal/domain/entity"
	"github.com/remla25-team8/model-service/internal/domain/repository"
	"github.com/remla25-team8/model-service/internal/domain/service"
	"github.com/remla25-team8/model-service/internal/infrastructure/metrics"
)

// Error definitions for the sentiment usecase
var (
	// ErrMissingReview is the client error for a request without a usable review
	ErrMissingReview = errors.New("missing 'review' field in request body")
	// ErrPredictionFailed is the service error for any downstream failure
	ErrPredictionFailed = errors.New("prediction failed")
)

// Fixed values returned by DumbPredict
const (
	DumbResult          = "Positive"
	DumbClassifier      = "decision tree"
	DumbNote            = "Static response for wiring checks; the model is not consulted"
	MaxEchoedReviewRunes = 500
)

// HealthyStatus is the status reported by Health
const HealthyStatus = "healthy"

// PredictInput represents the body of a prediction request
type PredictInput struct {
	Review string `json:"review" binding:"required" example:"The food was delicious!"`
}

// DumbPredictInput represents the optional body of a fixed prediction request
type DumbPredictInput struct {
	Review string `json:"review" example:"The food was delicious!"`
}

// PredictOutput represents the result of a prediction
type PredictOutput struct {
	Sentiment       string  `json:"sentiment" example:"positive"`
	Confidence      float64 `json:"confidence" example:"0.9"`
	ProcessedReview string  `json:"processed_review" example:"food delici"`
	Endpoint        string  `json:"endpoint" example:"http://localhost:8080"`
}

// DumbPredictOutput represents the fixed verdict of DumbPredict
type DumbPredictOutput struct {
	Result     string `json:"result" example:"Positive"`
	Classifier string `json:"classifier" example:"decision tree"`
	Review     string `json:"review"`
	Note       string `json:"note"`
}

// HealthOutput represents the static liveness report
type HealthOutput struct {
	Status      string `json:"status" example:"healthy"`
	Service     string `json:"service" example:"restaurant-sentiment"`
	Environment string `json:"environment" example:"development"`
	Endpoint    string `json:"endpoint" example:"http://localhost:8080"`
}

// ServiceInfo is the static metadata reported by the service
type ServiceInfo struct {
	Name        string
	Environment string
	Endpoint    string
}

// Model groups the classifier collaborators shared by all requests
type Model struct {
	Classifier   service.Classifier
	Preprocessor service.Preprocessor
	Backend      string
	Version      string
}

// SentimentUsecase defines the interface for sentiment business logic
type SentimentUsecase interface {
	Predict(ctx context.Context, input *PredictInput) (*PredictOutput, error)
	DumbPredict(input *DumbPredictInput) *DumbPredictOutput
	Health() *HealthOutput
}

type sentimentUsecase struct {
	model    Model
	info     ServiceInfo
	cache    repository.PredictionCache
	cacheTTL time.Duration
	log      *zap.Logger
}

// Option configures optional usecase collaborators
type Option func(*sentimentUsecase)

// WithCache enables the prediction cache
func WithCache(cache repository.PredictionCache, ttl time.Duration) Option {
	return func(uc *sentimentUsecase) {
		uc.cache = cache
		uc.cacheTTL = ttl
	}
}

// NewSentimentUsecase creates a new sentiment usecase
func NewSentimentUsecase(model Model, info ServiceInfo, log *zap.Logger, opts ...Option) SentimentUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	uc := &sentimentUsecase{
		model: model,
		info:  info,
		log:   log,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Predict classifies a review. Any downstream failure, including a panic in
// a collaborator, is logged and reported as ErrPredictionFailed.
func (uc *sentimentUsecase) Predict(ctx context.Context, input *PredictInput) (output *PredictOutput, err error) {
	if input == nil || strings.TrimSpace(input.Review) == "" {
		return nil, ErrMissingReview
	}

	defer func() {
		if r := recover(); r != nil {
			output, err = nil, uc.fail("panic", fmt.Errorf("recovered panic: %v", r))
		}
	}()

	processed, err := uc.model.Preprocessor.Preprocess(input.Review)
	if err != nil {
		return nil, uc.fail("preprocess", err)
	}

	result, err := uc.classify(ctx, processed)
	if err != nil {
		return nil, err
	}

	sentiment := result.Sentiment()
	metrics.PredictionsTotal.WithLabelValues(uc.model.Backend, sentiment).Inc()

	uc.log.Debug("Prediction completed",
		zap.String("backend", uc.model.Backend),
		zap.String("sentiment", sentiment),
		zap.Float64("confidence", result.Confidence),
	)

	return &PredictOutput{
		Sentiment:       sentiment,
		Confidence:      result.Confidence,
		ProcessedReview: processed.Text,
		Endpoint:        uc.info.Endpoint,
	}, nil
}

func (uc *sentimentUsecase) classify(ctx context.Context, processed *entity.ProcessedReview) (*entity.PredictionResult, error) {
	var key string
	if uc.cache != nil {
		key = repository.PredictionKey(uc.model.Version, processed)
		if cached := uc.lookup(ctx, key); cached != nil {
			return cached, nil
		}
	}

	features, err := uc.model.Preprocessor.Vectorize(processed)
	if err != nil {
		return nil, uc.fail("vectorize", err)
	}

	label, err := uc.model.Classifier.Predict(ctx, features)
	if err != nil {
		return nil, uc.fail("predict", err)
	}
	if !label.Valid() {
		return nil, uc.fail("predict", fmt.Errorf("classifier returned unknown label %d", label))
	}

	proba, err := uc.model.Classifier.PredictProba(ctx, features)
	if err != nil {
		return nil, uc.fail("predict_proba", err)
	}

	result := entity.NewPredictionResult(label, proba[1])

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, result, uc.cacheTTL); err != nil {
			uc.log.Warn("Failed to cache prediction", zap.Error(err))
		}
	}

	return result, nil
}

func (uc *sentimentUsecase) lookup(ctx context.Context, key string) *entity.PredictionResult {
	cached, err := uc.cache.Get(ctx, key)
	switch {
	case err != nil:
		metrics.CacheLookupsTotal.WithLabelValues("error").Inc()
		uc.log.Warn("Prediction cache lookup failed", zap.Error(err))
		return nil
	case cached == nil:
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
		return nil
	default:
		metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
		return cached
	}
}

// fail logs the cause and returns the generic service error
func (uc *sentimentUsecase) fail(stage string, cause error) error {
	metrics.PredictionFailuresTotal.WithLabelValues(uc.model.Backend, stage).Inc()
	uc.log.Error("Prediction failed",
		zap.String("stage", stage),
		zap.String("backend", uc.model.Backend),
		zap.Error(cause),
	)
	return ErrPredictionFailed
}

// DumbPredict returns a constant positive verdict without consulting the model
func (uc *sentimentUsecase) DumbPredict(input *DumbPredictInput) *DumbPredictOutput {
	var review string
	if input != nil {
		review = TruncateRunes(input.Review, MaxEchoedReviewRunes)
	}
	return &DumbPredictOutput{
		Result:     DumbResult,
		Classifier: DumbClassifier,
		Review:     review,
		Note:       DumbNote,
	}
}

// Health reports static service metadata
func (uc *sentimentUsecase) Health() *HealthOutput {
	return &HealthOutput{
		Status:      HealthyStatus,
		Service:     uc.info.Name,
		Environment: uc.info.Environment,
		Endpoint:    uc.info.Endpoint,
	}
}

// TruncateRunes shortens s to at most n characters
func TruncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

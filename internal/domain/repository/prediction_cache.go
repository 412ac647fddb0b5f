package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/remla25-team8/model-service/internal/domain/entity"
)

// PredictionCache stores prediction results keyed by model version and processed text
type PredictionCache interface {
	// Get returns the cached result, or nil when there is none
	Get(ctx context.Context, key string) (*entity.PredictionResult, error)
	Set(ctx context.Context, key string, result *entity.PredictionResult, ttl time.Duration) error
	Ping(ctx context.Context) error
}

// PredictionKey derives the cache key for a processed review under a model
// version. Both the normalized and the plain text take part, since classifiers
// read either.
func PredictionKey(modelVersion string, review *entity.ProcessedReview) string {
	h := sha256.New()
	for _, part := range []string{modelVersion, review.Text, review.Plain} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return "sentiment:prediction:" + hex.EncodeToString(h.Sum(nil))
}

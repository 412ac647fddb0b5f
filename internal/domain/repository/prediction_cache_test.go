package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/remla25-team8/model-service/internal/domain/entity"
)

func TestPredictionKey(t *testing.T) {
	review := func(text, plain string) *entity.ProcessedReview {
		return &entity.ProcessedReview{Text: text, Plain: plain}
	}

	key := PredictionKey("v1", review("food terribl", "the food was terrible"))

	assert.Contains(t, key, "sentiment:prediction:")
	assert.Len(t, key, len("sentiment:prediction:")+64)
	assert.Equal(t, key, PredictionKey("v1", review("food terribl", "the food was terrible")))
	assert.NotEqual(t, key, PredictionKey("v2", review("food terribl", "the food was terrible")))
	assert.NotEqual(t, key, PredictionKey("v1", review("food good", "the food was terrible")))
	assert.NotEqual(t, PredictionKey("v1a", review("b", "")), PredictionKey("v1", review("ab", "")))

	t.Run("plain text takes part in the key", func(t *testing.T) {
		assert.NotEqual(t,
			PredictionKey("lexicon", review("food good", "food good")),
			PredictionKey("lexicon", review("food good", "the food was very good")))
		assert.NotEqual(t,
			PredictionKey("v1", review("a", "b c")),
			PredictionKey("v1", review("a b", "c")))
	})
}

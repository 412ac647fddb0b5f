package preprocessing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remla25-team8/model-service/internal/domain/entity"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases and strips punctuation",
			input:    "The food was GOOD!!",
			expected: "the food was good",
		},
		{
			name:     "keeps markdown link text only",
			input:    "See [the menu](https://example.com/menu) today",
			expected: "see the menu today",
		},
		{
			name:     "drops bare urls",
			input:    "Order at https://example.com/order now",
			expected: "order at now",
		},
		{
			name:     "removes markdown emphasis",
			input:    "**Great** _pasta_",
			expected: "great pasta",
		},
		{
			name:     "removes digits",
			input:    "10 out of 10",
			expected: "out of",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clean(tt.input))
		})
	}
}

func TestTextPreprocessor_Preprocess(t *testing.T) {
	p, err := NewTextPreprocessor(nil)
	require.NoError(t, err)

	t.Run("removes stopwords and stems", func(t *testing.T) {
		processed, err := p.Preprocess("The food was terrible")

		require.NoError(t, err)
		assert.Equal(t, "food terribl", processed.Text)
		assert.Equal(t, "the food was terrible", processed.Plain)
		assert.Equal(t, []string{"food", "terribl"}, processed.Terms)
	})

	t.Run("keeps negations", func(t *testing.T) {
		processed, err := p.Preprocess("It was not good")

		require.NoError(t, err)
		assert.Equal(t, "not good", processed.Text)
	})

	t.Run("review of only stopwords yields empty text", func(t *testing.T) {
		processed, err := p.Preprocess("it was the")

		require.NoError(t, err)
		assert.Equal(t, "", processed.Text)
		assert.Empty(t, processed.Terms)
	})

	t.Run("rejects overly long review", func(t *testing.T) {
		processed, err := p.Preprocess(strings.Repeat("a", DefaultMaxReviewRunes+1))

		assert.ErrorIs(t, err, ErrReviewTooLong)
		assert.Nil(t, processed)
	})
}

func TestTextPreprocessor_Vectorize(t *testing.T) {
	t.Run("counts vocabulary terms", func(t *testing.T) {
		p, err := NewTextPreprocessor([]string{"good", "food", "terribl"})
		require.NoError(t, err)
		assert.Equal(t, 3, p.VocabularySize())

		processed, err := p.Preprocess("Good food, good service")
		require.NoError(t, err)

		features, err := p.Vectorize(processed)

		require.NoError(t, err)
		assert.Equal(t, []float64{2, 1, 0}, features.Counts)
		assert.Equal(t, processed.Terms, features.Terms)
		assert.Equal(t, processed.Plain, features.Plain)
	})

	t.Run("without vocabulary counts are nil", func(t *testing.T) {
		p, err := NewTextPreprocessor(nil)
		require.NoError(t, err)

		features, err := p.Vectorize(&entity.ProcessedReview{Text: "good", Terms: []string{"good"}})

		require.NoError(t, err)
		assert.Nil(t, features.Counts)
		assert.Equal(t, []string{"good"}, features.Terms)
	})

	t.Run("nil review is an error", func(t *testing.T) {
		p, err := NewTextPreprocessor(nil)
		require.NoError(t, err)

		features, err := p.Vectorize(nil)

		assert.Error(t, err)
		assert.Nil(t, features)
	})
}

func TestNewTextPreprocessor(t *testing.T) {
	t.Run("rejects duplicate terms", func(t *testing.T) {
		p, err := NewTextPreprocessor([]string{"good", "good"})

		assert.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("rejects empty terms", func(t *testing.T) {
		p, err := NewTextPreprocessor([]string{"good", ""})

		assert.Error(t, err)
		assert.Nil(t, p)
	})
}

package model

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/remla25-team8/model-service/internal/domain/entity"
	"github.com/remla25-team8/model-service/internal/infrastructure/config"
)

// MockDownloader is a mock implementation of ArtifactDownloader
type MockDownloader struct {
	mock.Mock
}

func (m *MockDownloader) Download(ctx context.Context, repository, revision, filename string) ([]byte, error) {
	args := m.Called(ctx, repository, revision, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

const testArtifact = `{
	"version": "v1.2.0",
	"vocabulary": ["good", "terribl"],
	"coefficients": [2.5, -2.5],
	"intercept": 0.1
}`

func hubConfig() *config.ModelConfig {
	return &config.ModelConfig{
		Backend:    config.BackendHub,
		Repository: "team8/sentiment",
		Revision:   "v1.2.0",
		Filename:   "model.json",
		Timeout:    time.Second,
	}
}

func TestLoad(t *testing.T) {
	log := zap.NewNop()
	ctx := context.Background()

	t.Run("mock backend", func(t *testing.T) {
		bundle, err := Load(ctx, &config.ModelConfig{Backend: config.BackendMock}, nil, log)

		require.NoError(t, err)
		assert.Equal(t, "mock", bundle.Backend)
		assert.Equal(t, "mock", bundle.Classifier.Name())
		assert.NotNil(t, bundle.Preprocessor)
	})

	t.Run("lexicon backend", func(t *testing.T) {
		bundle, err := Load(ctx, &config.ModelConfig{Backend: config.BackendLexicon}, nil, log)

		require.NoError(t, err)
		assert.Equal(t, "lexicon", bundle.Classifier.Name())
	})

	t.Run("hub backend wires vocabulary into the vectorizer", func(t *testing.T) {
		downloader := new(MockDownloader)
		downloader.On("Download", mock.Anything, "team8/sentiment", "v1.2.0", "model.json").
			Return([]byte(testArtifact), nil)

		bundle, err := Load(ctx, hubConfig(), downloader, log)

		require.NoError(t, err)
		assert.Equal(t, "hub", bundle.Backend)
		assert.Equal(t, "v1.2.0", bundle.Version)

		processed, err := bundle.Preprocessor.Preprocess("Good food")
		require.NoError(t, err)
		features, err := bundle.Preprocessor.Vectorize(processed)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 0}, features.Counts)

		label, err := bundle.Classifier.Predict(ctx, features)
		require.NoError(t, err)
		assert.Equal(t, entity.LabelPositive, label)
		downloader.AssertExpectations(t)
	})

	t.Run("hub download failure is fatal", func(t *testing.T) {
		downloader := new(MockDownloader)
		downloader.On("Download", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("model hub returned status 404"))

		bundle, err := Load(ctx, hubConfig(), downloader, log)

		assert.Error(t, err)
		assert.Nil(t, bundle)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("invalid artifact is fatal", func(t *testing.T) {
		downloader := new(MockDownloader)
		downloader.On("Download", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]byte(`{"vocabulary": ["a", "a"], "coefficients": [1, 2]}`), nil)

		bundle, err := Load(ctx, hubConfig(), downloader, log)

		assert.Error(t, err)
		assert.Nil(t, bundle)
	})

	t.Run("hub backend without downloader", func(t *testing.T) {
		bundle, err := Load(ctx, hubConfig(), nil, log)

		assert.Error(t, err)
		assert.Nil(t, bundle)
	})

	t.Run("unknown backend", func(t *testing.T) {
		bundle, err := Load(ctx, &config.ModelConfig{Backend: "neural"}, nil, log)

		assert.Error(t, err)
		assert.Nil(t, bundle)
	})
}

package model

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/remla25-team8/model-service/internal/adapter/classifier"
	"github.com/remla25-team8/model-service/internal/adapter/preprocessing"
	"github.com/remla25-team8/model-service/internal/domain/service"
	"github.com/remla25-team8/model-service/internal/infrastructure/config"
)

// ArtifactDownloader fetches model files from a remote store
type ArtifactDownloader interface {
	Download(ctx context.Context, repository, revision, filename string) ([]byte, error)
}

// Bundle is the classifier and preprocessor pair shared by all requests.
// It is built once at startup and never mutated.
type Bundle struct {
	Classifier   service.Classifier
	Preprocessor service.Preprocessor
	Backend      string
	Version      string
}

// Load builds the bundle for the configured backend. Any error is meant to
// stop the process.
func Load(ctx context.Context, cfg *config.ModelConfig, downloader ArtifactDownloader, log *zap.Logger) (*Bundle, error) {
	switch cfg.Backend {
	case config.BackendMock:
		return newLocalBundle(config.BackendMock, classifier.NewKeywordClassifier(classifier.DefaultKeyword), log)
	case config.BackendLexicon:
		return newLocalBundle(config.BackendLexicon, classifier.NewLexiconClassifier(), log)
	case config.BackendHub:
		return loadHubBundle(ctx, cfg, downloader, log)
	default:
		return nil, fmt.Errorf("unknown model backend %q", cfg.Backend)
	}
}

func newLocalBundle(backend string, clf service.Classifier, log *zap.Logger) (*Bundle, error) {
	preprocessor, err := preprocessing.NewTextPreprocessor(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create preprocessor: %w", err)
	}

	log.Info("Initialized model",
		zap.String("backend", backend),
		zap.String("classifier", clf.Name()),
	)

	return &Bundle{
		Classifier:   clf,
		Preprocessor: preprocessor,
		Backend:      backend,
		Version:      backend,
	}, nil
}

func loadHubBundle(ctx context.Context, cfg *config.ModelConfig, downloader ArtifactDownloader, log *zap.Logger) (*Bundle, error) {
	if downloader == nil {
		return nil, errors.New("hub backend requires an artifact downloader")
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	log.Info("Downloading model artifact",
		zap.String("repository", cfg.Repository),
		zap.String("revision", cfg.Revision),
		zap.String("filename", cfg.Filename),
	)

	data, err := downloader.Download(ctx, cfg.Repository, cfg.Revision, cfg.Filename)
	if err != nil {
		return nil, fmt.Errorf("failed to download model artifact: %w", err)
	}

	artifact, err := classifier.ParseArtifact(data)
	if err != nil {
		return nil, err
	}

	preprocessor, err := preprocessing.NewTextPreprocessor(artifact.Vocabulary)
	if err != nil {
		return nil, fmt.Errorf("failed to create vectorizer: %w", err)
	}

	version := artifact.Version
	if version == "" {
		version = cfg.Revision
	}

	log.Info("Initialized model",
		zap.String("backend", config.BackendHub),
		zap.String("version", version),
		zap.Int("vocabulary_size", preprocessor.VocabularySize()),
	)

	return &Bundle{
		Classifier:   classifier.NewLogisticClassifier(artifact),
		Preprocessor: preprocessor,
		Backend:      config.BackendHub,
		Version:      version,
	}, nil
}

package preprocessing

import (
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/kljensen/snowball/english"
	"github.com/russross/blackfriday/v2"

	"github.com/remla25-team8/model-service/internal/domain/entity"
	"github.com/remla25-team8/model-service/internal/domain/service"
)

// DefaultMaxReviewRunes bounds the review length accepted by Preprocess
const DefaultMaxReviewRunes = 20000

// ErrReviewTooLong is returned for reviews above the configured length limit
var ErrReviewTooLong = errors.New("review exceeds maximum length")

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?://[^\s)]+)\)`)
	urlPattern          = regexp.MustCompile(`https?://\S+|www\.\S+`)
	htmlTagPattern      = regexp.MustCompile(`<[^>]*>`)
	nonLetterPattern    = regexp.MustCompile(`[^\p{L}]+`)
)

// TextPreprocessor cleans reviews and builds bag-of-words features
type TextPreprocessor struct {
	vocabulary     map[string]int
	maxReviewRunes int
}

var _ service.Preprocessor = (*TextPreprocessor)(nil)

// NewTextPreprocessor creates a preprocessor. With an empty vocabulary the
// feature vectors carry terms only and no counts.
func NewTextPreprocessor(vocabulary []string) (*TextPreprocessor, error) {
	p := &TextPreprocessor{maxReviewRunes: DefaultMaxReviewRunes}
	if len(vocabulary) == 0 {
		return p, nil
	}

	p.vocabulary = make(map[string]int, len(vocabulary))
	for i, term := range vocabulary {
		if term == "" {
			return nil, fmt.Errorf("vocabulary entry %d is empty", i)
		}
		if _, dup := p.vocabulary[term]; dup {
			return nil, fmt.Errorf("duplicate vocabulary term %q", term)
		}
		p.vocabulary[term] = i
	}
	return p, nil
}

// VocabularySize returns the number of terms the vectorizer counts
func (p *TextPreprocessor) VocabularySize() int {
	return len(p.vocabulary)
}

// Preprocess normalizes a raw review
func (p *TextPreprocessor) Preprocess(review string) (*entity.ProcessedReview, error) {
	if n := utf8.RuneCountInString(review); n > p.maxReviewRunes {
		return nil, fmt.Errorf("%w: %d > %d characters", ErrReviewTooLong, n, p.maxReviewRunes)
	}

	plain := Clean(review)

	var terms []string
	for _, word := range strings.Fields(plain) {
		if isStopword(word) {
			continue
		}
		terms = append(terms, english.Stem(word, false))
	}

	return &entity.ProcessedReview{
		Text:  strings.Join(terms, " "),
		Plain: plain,
		Terms: terms,
	}, nil
}

// Vectorize counts vocabulary terms in the processed review
func (p *TextPreprocessor) Vectorize(review *entity.ProcessedReview) (*entity.FeatureVector, error) {
	if review == nil {
		return nil, errors.New("processed review is nil")
	}

	features := &entity.FeatureVector{
		Terms: review.Terms,
		Plain: review.Plain,
	}

	if len(p.vocabulary) == 0 {
		return features, nil
	}

	features.Counts = make([]float64, len(p.vocabulary))
	for _, term := range review.Terms {
		if idx, ok := p.vocabulary[term]; ok {
			features.Counts[idx]++
		}
	}

	return features, nil
}

// Clean renders markdown to plain text, drops links and markup, lowercases
// and keeps letters only, separated by single spaces.
func Clean(input string) string {
	rendered := string(blackfriday.Run([]byte(input), blackfriday.WithNoExtensions()))
	text := htmlTagPattern.ReplaceAllString(rendered, " ")
	text = html.UnescapeString(text)

	text = markdownLinkPattern.ReplaceAllString(text, "$1")
	text = urlPattern.ReplaceAllString(text, " ")

	text = nonLetterPattern.ReplaceAllString(strings.ToLower(text), " ")
	return strings.Join(strings.Fields(text), " ")
}

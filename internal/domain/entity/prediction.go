package entity

import "math"

// Label is the binary class emitted by a classifier
type Label int

// Label values
const (
	LabelNegative Label = 0
	LabelPositive Label = 1
)

// Sentiment strings returned to clients
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
)

// Valid reports whether the label is one of the two known classes
func (l Label) Valid() bool {
	return l == LabelNegative || l == LabelPositive
}

// Sentiment maps label 1 to "positive" and everything else to "negative"
func (l Label) Sentiment() string {
	if l == LabelPositive {
		return SentimentPositive
	}
	return SentimentNegative
}

// ProcessedReview is the normalized form of a review, valid for one request
type ProcessedReview struct {
	// Text is the normalized review echoed back to the caller
	Text string
	// Plain is the cleaned text before stopword removal and stemming
	Plain string
	// Terms are the normalized terms in input order
	Terms []string
}

// FeatureVector is the classifier input produced by the preprocessor
type FeatureVector struct {
	Terms []string
	// Counts is aligned to the vectorizer vocabulary; nil when none is configured
	Counts []float64
	Plain  string
}

// PredictionResult is the outcome of one classification
type PredictionResult struct {
	Label      Label   `json:"label"`
	Confidence float64 `json:"confidence"`
}

// NewPredictionResult builds a result whose confidence is clamped to [0,1]
func NewPredictionResult(label Label, confidence float64) *PredictionResult {
	return &PredictionResult{
		Label:      label,
		Confidence: ClampProbability(confidence),
	}
}

// Sentiment returns the sentiment string for the result label
func (r *PredictionResult) Sentiment() string {
	return r.Label.Sentiment()
}

// ClampProbability bounds p to [0,1]; NaN becomes 0
func ClampProbability(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	return math.Max(0, math.Min(1, p))
}

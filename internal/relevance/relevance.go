package relevance

import (
	"errors"
	"math"
	"strings"

	"interview-insights-go/internal/types"
)

// Short-circuit conditions checked before any similarity computation.
var (
	ErrNoAnswer    = errors.New("no answer provided")
	ErrNoReference = errors.New("no reference answer available")
)

// Messages returned with the zero-score evaluations for the
// short-circuit cases.
const (
	noAnswerFeedback    = "No answer provided. Please enter your response."
	noReferenceFeedback = "No reference answer available for comparison."
)

type tier struct {
	min  float64
	text string
}

var feedbackTiers = []tier{
	{90, "Excellent answer! Highly relevant and comprehensive."},
	{80, "Very good answer! Strong relevance with minor room for improvement."},
	{70, "Good answer! Relevant but could include more details."},
	{60, "Satisfactory answer. Relevant but lacks depth and detail."},
	{50, "Partially relevant. Misses key concepts or details."},
	{30, "Weak answer. Limited relevance to the reference answer."},
	{0, "Off-topic or irrelevant. Please review the question carefully."},
}

// SimilarityScorer produces a cosine similarity between a candidate
// answer and a reference answer. The embedding model lives behind an
// external service; this package only tiers the scalar.
type SimilarityScorer interface {
	Similarity(userAnswer, referenceAnswer string) (float64, error)
}

// Validate checks the short-circuit conditions. It is split out so
// callers can report the zero-score evaluation without invoking the
// similarity backend at all.
func Validate(userAnswer, referenceAnswer string) (types.AnswerEvaluation, error) {
	if strings.TrimSpace(userAnswer) == "" {
		return types.AnswerEvaluation{Feedback: noAnswerFeedback}, ErrNoAnswer
	}
	if strings.TrimSpace(referenceAnswer) == "" {
		return types.AnswerEvaluation{Feedback: noReferenceFeedback}, ErrNoReference
	}
	return types.AnswerEvaluation{}, nil
}

// FromSimilarity converts a raw cosine similarity into a percentage
// score with tiered feedback. Similarities outside [0,1] are clamped
// so the score stays in range.
func FromSimilarity(similarity float64) types.AnswerEvaluation {
	score := math.Max(0, math.Min(100, similarity*100))
	score = math.Round(score*100) / 100
	return types.AnswerEvaluation{
		Score:    score,
		Feedback: feedbackFor(score),
	}
}

// Evaluate runs the full path: validation, similarity, tiering.
func Evaluate(scorer SimilarityScorer, userAnswer, referenceAnswer string) (types.AnswerEvaluation, error) {
	if ev, err := Validate(userAnswer, referenceAnswer); err != nil {
		return ev, err
	}
	sim, err := scorer.Similarity(userAnswer, referenceAnswer)
	if err != nil {
		return types.AnswerEvaluation{}, err
	}
	return FromSimilarity(sim), nil
}

func feedbackFor(score float64) string {
	for _, t := range feedbackTiers {
		if score >= t.min {
			return t.text
		}
	}
	return feedbackTiers[len(feedbackTiers)-1].text
}

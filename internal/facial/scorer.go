package facial

import (
	"math"

	"interview-insights-go/internal/types"
)

// Eye contact is categorical: both face and at least one eye visible,
// face only, or nothing.
const (
	EyeContactFull = 100.0
	EyeContactFace = 50.0
	EyeContactNone = 0.0
)

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// EyeContactScore maps the detector flags to the categorical score.
func EyeContactScore(facePresent, eyesDetected bool) float64 {
	switch {
	case !facePresent:
		return EyeContactNone
	case eyesDetected:
		return EyeContactFull
	default:
		return EyeContactFace
	}
}

// ComputeInterviewMetrics derives Confidence / Nervousness / Engagement
// from raw emotion probabilities (summing to ~100) and the eye-contact
// score. No face, or an empty distribution, hard-zeros all three; the
// weighted formulas alone would not.
func ComputeInterviewMetrics(emotions types.EmotionDistribution, eyeContact float64, facePresent bool) types.InterviewMetrics {
	if !facePresent || len(emotions) == 0 {
		return types.InterviewMetrics{}
	}

	happy := emotions["happy"]
	neutral := emotions["neutral"]
	surprise := emotions["surprise"]
	angry := emotions["angry"]
	disgust := emotions["disgust"]
	sad := emotions["sad"]
	fear := emotions["fear"]

	confidence := happy*1.00 +
		neutral*0.65 +
		surprise*0.40 +
		angry*0.25 +
		disgust*0.15 +
		sad*0.10 +
		fear*0.05
	confidence = clamp(confidence, 0, 100)

	nervousness := fear*1.00 +
		sad*0.70 +
		surprise*0.50 +
		disgust*0.40 +
		angry*0.30 +
		neutral*0.10
	nervousness = clamp(nervousness, 0, 100)

	// More expressive (less neutral) reads as more engaged.
	emotionActivity := 100.0 - neutral
	engagement := 0.50*eyeContact + 0.30*emotionActivity + 0.20*100.0
	engagement = clamp(engagement, 0, 100)

	return types.InterviewMetrics{
		Confidence:  round1(confidence),
		Nervousness: round1(nervousness),
		Engagement:  round1(engagement),
	}
}

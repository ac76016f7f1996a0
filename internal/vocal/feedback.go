package vocal

import "interview-insights-go/internal/types"

// generateFeedback maps each dimension through its own threshold table
// and returns the sentences in a fixed order: clarity, confidence, tone,
// hesitation, stress.
func generateFeedback(m types.VocalClipMetrics) []string {
	fb := make([]string, 0, 5)

	switch {
	case m.ClarityScore >= 75:
		fb = append(fb, "Your speech is clear and well-articulated.")
	case m.ClarityScore >= 50:
		fb = append(fb, "Your speech clarity is moderate. Try to enunciate words more distinctly.")
	default:
		fb = append(fb, "Your speech clarity needs improvement. Focus on pronouncing each word clearly.")
	}

	switch {
	case m.ConfidenceScore >= 75:
		fb = append(fb, "You sound confident and composed.")
	case m.ConfidenceScore >= 50:
		fb = append(fb, "Your confidence level is fair. Try to maintain a steady volume and pace.")
	default:
		fb = append(fb, "You sound uncertain. Practice speaking with a consistent volume and tempo.")
	}

	// Monotone delivery overrides the tone tiering.
	switch {
	case m.MonotoneLevel >= 70:
		fb = append(fb, "Your tone is quite monotone. Vary your pitch to keep the listener engaged.")
	case m.ToneScore >= 70:
		fb = append(fb, "Great tonal variety. Your voice sounds engaging and expressive.")
	default:
		fb = append(fb, "Your tone is acceptable but could be more dynamic and energetic.")
	}

	switch {
	case m.HesitationScore >= 60:
		fb = append(fb, "Frequent hesitations detected. Practice to reduce pauses and filler moments.")
	case m.HesitationScore >= 30:
		fb = append(fb, "Some hesitation is present. Try to reduce unnecessary pauses.")
	default:
		fb = append(fb, "Minimal hesitation. Your speech flows well.")
	}

	switch {
	case m.StressScore >= 60:
		fb = append(fb, "Signs of vocal stress detected. Deep breathing before speaking may help.")
	case m.StressScore >= 30:
		fb = append(fb, "Mild vocal stress indicators present. Stay relaxed and breathe regularly.")
	default:
		fb = append(fb, "Your voice sounds relaxed and natural.")
	}

	return fb
}

// displayEmotions maps the acoustic classifier vocabulary to the labels
// shown to candidates and consumed by the fusion summary.
var displayEmotions = map[string]string{
	"neutral":  "Calm",
	"happy":    "Confident",
	"angry":    "Angry",
	"sad":      "Sad",
	"fear":     "Nervous",
	"disgust":  "Tense",
	"surprise": "Energetic",
}

// DisplayEmotion translates a raw classification label. Unknown labels
// pass through unchanged.
func DisplayEmotion(raw string) string {
	if d, ok := displayEmotions[raw]; ok {
		return d
	}
	return raw
}

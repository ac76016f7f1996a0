package session

import "math"

type tier struct {
	min  float64
	text string
}

// Tiers are evaluated from the highest threshold downward; the first
// "score >= min" match wins.
var feedbackTiers = map[string][]tier{
	"confidence": {
		{80, "Excellent confidence! You appeared very self-assured and composed throughout."},
		{60, "Good confidence level. You appeared fairly confident most of the time."},
		{40, "Moderate confidence. Try to maintain a calm, positive expression."},
		{0, "Low confidence detected. Practice maintaining a relaxed, positive demeanour."},
	},
	"nervousness": {
		{60, "High nervousness detected. Consider deep-breathing exercises before interviews."},
		{40, "Moderate nervousness. You showed some signs of discomfort; practice can help."},
		{20, "Slight nervousness, but mostly calm. Well managed overall."},
		{0, "Very calm and composed. Minimal signs of nervousness."},
	},
	"engagement": {
		{80, "Excellent engagement! You were expressive and attentive throughout."},
		{60, "Good engagement. You showed interest and stayed mostly attentive."},
		{40, "Moderate engagement. Try to show more interest through expressions."},
		{0, "Low engagement detected. Work on being more expressive and maintaining attention."},
	},
	"eye_contact": {
		{80, "Great eye contact! You maintained a strong connection with the camera."},
		{60, "Good eye contact overall, with occasional glances away."},
		{40, "Moderate eye contact. Try to look at the camera more consistently."},
		{0, "Low eye contact. Practice looking directly at the camera during responses."},
	},
	"overall": {
		{80, "Outstanding performance! You demonstrated strong interview presence."},
		{60, "Good performance overall. A few areas to polish for perfection."},
		{40, "Fair performance. Focused practice on the weaker areas will help a lot."},
		{0, "Needs improvement. Review each metric and practice targeted exercises."},
	},
}

// Qualitative maps a metric name and score into its canned feedback
// sentence. Unknown metrics return the empty string.
func Qualitative(metric string, score float64) string {
	for _, t := range feedbackTiers[metric] {
		if score >= t.min {
			return t.text
		}
	}
	return ""
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

package fusion

import (
	"fmt"
	"math"
	"strings"

	"interview-insights-go/internal/types"
)

// Fixed modality weights for the behavioral score.
const (
	VoiceWeight = 0.6
	FaceWeight  = 0.4
)

type feedbackRule struct {
	min      float64
	label    string
	feedback string
}

// Boundary-inclusive ranges spanning [0,100]; evaluated top down, the
// first "score >= min" match wins, so exactly one rule matches any
// score in range.
var feedbackRules = []feedbackRule{
	{90, "Outstanding", "Outstanding non-verbal communication! Your voice and facial expressions were highly aligned and confident."},
	{80, "Excellent", "Excellent non-verbal communication. You demonstrated strong vocal control and positive facial cues."},
	{70, "Good", "Good performance. Minor improvements in either vocal tone or facial expression could elevate your delivery."},
	{60, "Satisfactory", "Satisfactory performance. Consider practicing a more steady tone and maintaining natural facial expressions."},
	{50, "Needs Improvement", "Your delivery needs improvement. Focus on projecting confidence through your voice and keeping consistent eye contact."},
	{0, "Poor", "Try to maintain better eye contact and a steady voice. Practice speaking clearly and keeping a calm, composed facial expression."},
}

// Label sets that read as negative for each modality. Disjoint on
// purpose: the voice set covers delivery problems, the face set covers
// expressions.
var negativeVoice = map[string]bool{
	"nervous": true, "angry": true, "sad": true, "fear": true,
	"anxious": true, "monotone": true, "hesitant": true,
}

var negativeFace = map[string]bool{
	"nervous": true, "angry": true, "sad": true, "fear": true,
	"disgust": true, "anxious": true, "confused": true, "frustrated": true,
}

// Fuse combines the voice and face summaries into one behavioral score.
// A nil side defaults to {0, "N/A"}; a malformed side never errors, it
// scores zero.
func Fuse(voice, face *types.FusionInput) types.FusionResult {
	voiceScore, voiceEmotion := extract(voice)
	faceScore, faceEmotion := extract(face)

	raw := VoiceWeight*voiceScore + FaceWeight*faceScore
	final := math.Round(math.Max(0, math.Min(100, raw))*100) / 100

	label, feedback := lookupFeedback(final)

	return types.FusionResult{
		FinalScore:     final,
		Label:          label,
		Feedback:       feedback,
		VoiceEmotion:   voiceEmotion,
		FaceEmotion:    faceEmotion,
		EmotionSummary: emotionSummary(voiceEmotion, faceEmotion),
	}
}

func extract(in *types.FusionInput) (float64, string) {
	if in == nil {
		return 0, "N/A"
	}
	score := in.Score
	if math.IsNaN(score) || math.IsInf(score, 0) {
		score = 0
	}
	emotion := strings.TrimSpace(in.Emotion)
	if emotion == "" {
		emotion = "N/A"
	}
	return score, emotion
}

func lookupFeedback(score float64) (string, string) {
	for _, r := range feedbackRules {
		if score >= r.min {
			return r.label, r.feedback
		}
	}
	return feedbackRules[len(feedbackRules)-1].label, feedbackRules[len(feedbackRules)-1].feedback
}

// emotionSummary picks "but" when exactly one modality reads negative
// and "and" otherwise. Membership XOR, not label equality.
func emotionSummary(voiceEmotion, faceEmotion string) string {
	voiceNeg := negativeVoice[strings.ToLower(voiceEmotion)]
	faceNeg := negativeFace[strings.ToLower(faceEmotion)]

	conjunction := "and"
	if voiceNeg != faceNeg {
		conjunction = "but"
	}
	return fmt.Sprintf("Your tone was %s, %s your facial expression appeared %s.",
		voiceEmotion, conjunction, faceEmotion)
}

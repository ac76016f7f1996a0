package session

import "interview-insights-go/internal/types"

// SummarizeClips reduces a sequence of scored voice clips into the
// scalar+label summary consumed by the fusion engine. The emotion slot
// is derived from the averaged metrics: the dominant problem wins,
// otherwise the summary reads as confident delivery.
func SummarizeClips(clips []types.VocalClipMetrics) types.VoiceSessionSummary {
	if len(clips) == 0 {
		return types.VoiceSessionSummary{Emotion: "N/A"}
	}

	var overall, monotone, hesitation, stress float64
	for _, c := range clips {
		overall += c.OverallScore
		monotone += c.MonotoneLevel
		hesitation += c.HesitationScore
		stress += c.StressScore
	}
	n := float64(len(clips))
	overall /= n
	monotone /= n
	hesitation /= n
	stress /= n

	emotion := "Confident"
	switch {
	case stress >= 60:
		emotion = "Nervous"
	case hesitation >= 60:
		emotion = "Hesitant"
	case monotone >= 70:
		emotion = "Monotone"
	case overall < 50:
		emotion = "Uncertain"
	}

	return types.VoiceSessionSummary{
		ClipsAnalyzed: len(clips),
		AvgOverall:    round1(overall),
		Emotion:       emotion,
	}
}

package types

// --------------------------------------------
// Session-level output delivered to frontend
// --------------------------------------------

// SessionReport is the end-of-session reduction of all recorded frames.
type SessionReport struct {
	SessionID           string         `json:"session_id"`
	DurationSeconds     float64        `json:"duration_seconds"`
	TotalFramesAnalyzed int            `json:"total_frames_analyzed"`
	FacePresenceRate    float64        `json:"face_presence_rate"`
	AvgConfidence       float64        `json:"avg_confidence"`
	AvgNervousness      float64        `json:"avg_nervousness"`
	AvgEngagement       float64        `json:"avg_engagement"`
	AvgEyeContact       float64        `json:"avg_eye_contact"`
	OverallScore        float64        `json:"overall_score"`
	EmotionDistribution map[string]int `json:"emotion_distribution"`
	ConfidenceFeedback  string         `json:"confidence_feedback"`
	NervousnessFeedback string         `json:"nervousness_feedback"`
	EngagementFeedback  string         `json:"engagement_feedback"`
	EyeContactFeedback  string         `json:"eye_contact_feedback"`
	OverallFeedback     string         `json:"overall_feedback"`
}

// VoiceSessionSummary reduces a sequence of scored clips into the single
// scalar+label pair the fusion engine consumes for the voice modality.
type VoiceSessionSummary struct {
	ClipsAnalyzed int     `json:"clips_analyzed"`
	AvgOverall    float64 `json:"avg_overall"`
	Emotion       string  `json:"emotion"`
}

// --------------------------------------------
// Fusion boundary
// --------------------------------------------

// FusionInput is one modality's contribution to the behavioral score.
type FusionInput struct {
	Score   float64 `json:"score"`
	Emotion string  `json:"emotion"`
}

// FusionResult is the combined behavioral assessment.
type FusionResult struct {
	FinalScore     float64 `json:"final_score"`
	Label          string  `json:"label"`
	Feedback       string  `json:"feedback"`
	VoiceEmotion   string  `json:"voice_emotion"`
	FaceEmotion    string  `json:"face_emotion"`
	EmotionSummary string  `json:"emotion_summary"`
}

// --------------------------------------------
// Answer evaluation boundary
// --------------------------------------------

// AnswerEvaluation is the semantic relevance score for one answer.
type AnswerEvaluation struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

package types

// EmotionDistribution maps an emotion label to a probability-like value.
// Values come straight from the classifier and sum to roughly 100; they
// are read-only from the scorer's point of view.
type EmotionDistribution map[string]float64

// FacialEmotions is the fixed vocabulary emitted by the facial classifier.
var FacialEmotions = []string{"happy", "neutral", "surprise", "angry", "disgust", "sad", "fear"}

// FaceBox is a face bounding box in source-frame pixel coordinates.
type FaceBox struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// FrameObservation is one frame's worth of raw classifier output, as
// delivered by the external facial analysis service. The scorer consumes
// it, it never produces one.
type FrameObservation struct {
	Emotions        EmotionDistribution `json:"emotions"`
	DominantEmotion string              `json:"dominant_emotion"`
	FaceBox         *FaceBox            `json:"face_box,omitempty"`
	EyesDetected    bool                `json:"eyes_detected"`
}

// InterviewMetrics holds the three per-frame facial delivery scores,
// each clamped to [0,100]. All three are zero when no face is present.
type InterviewMetrics struct {
	Confidence  float64 `json:"confidence"`
	Nervousness float64 `json:"nervousness"`
	Engagement  float64 `json:"engagement"`
}

// FrameAnalysisResult is the full evaluation of a single video frame.
type FrameAnalysisResult struct {
	Success         bool                `json:"success"`
	Emotion         string              `json:"emotion"`     // stabilized label
	RawEmotion      string              `json:"raw_emotion"` // this frame's dominant label
	Confidence      float64             `json:"confidence"`  // probability of the dominant label
	EyeContactScore float64             `json:"eye_contact_score"`
	IsFacePresent   bool                `json:"is_face_present"`
	AllEmotions     EmotionDistribution `json:"all_emotions"`
	FaceBox         *FaceBox            `json:"face_box,omitempty"`
	Metrics         InterviewMetrics    `json:"interview_metrics"`
	Error           string              `json:"error,omitempty"`
}

// AcousticFeatureSet is the flat record of signal statistics the voice
// feature extractor computes for one audio clip.
type AcousticFeatureSet struct {
	Duration           float64 `json:"duration"`
	PitchMean          float64 `json:"pitch_mean"`
	PitchStd           float64 `json:"pitch_std"`
	PitchRange         float64 `json:"pitch_range"`
	PitchCV            float64 `json:"pitch_cv"`
	VoicedRatio        float64 `json:"voiced_ratio"`
	RMSMean            float64 `json:"rms_mean"`
	RMSStd             float64 `json:"rms_std"`
	RMSCV              float64 `json:"rms_cv"`
	CentroidMean       float64 `json:"spectral_centroid_mean"`
	CentroidStd        float64 `json:"spectral_centroid_std"`
	RolloffMean        float64 `json:"spectral_rolloff_mean"`
	ZCRMean            float64 `json:"zcr_mean"`
	PauseCount         int     `json:"pause_count"`
	TotalPauseDuration float64 `json:"total_pause_duration"`
	PauseRatio         float64 `json:"pause_ratio"`
	Tempo              float64 `json:"tempo"`
	SyllableRate       float64 `json:"syllable_rate"`
	Jitter             float64 `json:"jitter"`
	Shimmer            float64 `json:"shimmer"`
}

// DeepFeatureSummary summarizes the neural embedding sequence for one clip.
type DeepFeatureSummary struct {
	ActivationEnergy    float64 `json:"activation_energy"`
	TemporalVariability float64 `json:"temporal_variability"`
	MeanDispersion      float64 `json:"mean_feature_dispersion"`
	FeatureKurtosis     float64 `json:"feature_kurtosis"`
}

// VocalClipMetrics is the scored output for one audio clip.
type VocalClipMetrics struct {
	ClarityScore    float64  `json:"clarity_score"`
	ConfidenceScore float64  `json:"confidence_score"`
	ToneScore       float64  `json:"tone_score"`
	HesitationScore float64  `json:"hesitation_score"`
	StressScore     float64  `json:"stress_score"`
	MonotoneLevel   float64  `json:"monotone_level"`
	OverallScore    float64  `json:"overall_score"`
	Feedback        []string `json:"feedback"`
	Mode            string   `json:"mode"` // "full" or "quick"
}

package session

import (
	"errors"
	"math"
	"testing"

	"interview-insights-go/internal/types"
)

func faceFrame(conf, nerv, eng, eye float64, emotion string) types.FrameAnalysisResult {
	return types.FrameAnalysisResult{
		Success:         true,
		IsFacePresent:   true,
		Emotion:         emotion,
		EyeContactScore: eye,
		Metrics: types.InterviewMetrics{
			Confidence:  conf,
			Nervousness: nerv,
			Engagement:  eng,
		},
	}
}

func TestReduceEmptySession(t *testing.T) {
	tr := NewTracker()
	if _, err := tr.Reduce(); !errors.Is(err, ErrEmptySession) {
		t.Fatalf("expected ErrEmptySession, got %v", err)
	}
}

func TestReduceCountsNoFaceFrames(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < 6; i++ {
		tr.Record(faceFrame(80, 20, 70, 100, "happy"))
	}
	for i := 0; i < 4; i++ {
		tr.Record(types.FrameAnalysisResult{Success: true, IsFacePresent: false})
	}

	rep, err := tr.Reduce()
	if err != nil {
		t.Fatal(err)
	}
	if rep.TotalFramesAnalyzed != 10 {
		t.Errorf("total frames = %d; want 10", rep.TotalFramesAnalyzed)
	}
	if tr.FacePresentFrames() != 6 {
		t.Errorf("face-present frames = %d; want 6", tr.FacePresentFrames())
	}
	if rep.FacePresenceRate != 60.0 {
		t.Errorf("face presence rate = %v; want 60.0", rep.FacePresenceRate)
	}
	// Averages use only the 6 face-present samples.
	if rep.AvgConfidence != 80.0 || rep.AvgNervousness != 20.0 {
		t.Errorf("averages = %v/%v; want 80.0/20.0", rep.AvgConfidence, rep.AvgNervousness)
	}
}

func TestReduceOverallScore(t *testing.T) {
	tr := NewTracker()
	tr.Record(faceFrame(80, 20, 70, 100, "happy"))

	rep, err := tr.Reduce()
	if err != nil {
		t.Fatal(err)
	}
	// 80*0.30 + (100-20)*0.25 + 70*0.25 + 100*0.20 = 81.5
	if math.Abs(rep.OverallScore-81.5) > 1e-9 {
		t.Errorf("overall = %v; want 81.5", rep.OverallScore)
	}
}

func TestReduceIsRepeatable(t *testing.T) {
	tr := NewTracker()
	tr.Record(faceFrame(50, 50, 50, 50, "neutral"))
	tr.Record(faceFrame(70, 30, 60, 100, "happy"))

	first, err := tr.Reduce()
	if err != nil {
		t.Fatal(err)
	}
	second, err := tr.Reduce()
	if err != nil {
		t.Fatal(err)
	}
	if first.AvgConfidence != second.AvgConfidence ||
		first.OverallScore != second.OverallScore ||
		first.TotalFramesAnalyzed != second.TotalFramesAnalyzed {
		t.Errorf("Reduce changed between calls: %+v vs %+v", first, second)
	}
}

func TestReduceEmotionDistribution(t *testing.T) {
	tr := NewTracker()
	for _, e := range []string{"happy", "happy", "neutral"} {
		tr.Record(faceFrame(50, 50, 50, 100, e))
	}
	rep, err := tr.Reduce()
	if err != nil {
		t.Fatal(err)
	}
	if rep.EmotionDistribution["happy"] != 2 || rep.EmotionDistribution["neutral"] != 1 {
		t.Errorf("distribution = %v; want happy:2 neutral:1", rep.EmotionDistribution)
	}
}

func TestResetStartsFreshSession(t *testing.T) {
	tr := NewTracker()
	oldID := tr.ID()
	tr.Record(faceFrame(50, 50, 50, 50, "neutral"))
	tr.Reset()

	if tr.TotalFrames() != 0 {
		t.Errorf("total frames after reset = %d; want 0", tr.TotalFrames())
	}
	if tr.ID() == oldID {
		t.Error("reset should assign a new session id")
	}
	if _, err := tr.Reduce(); !errors.Is(err, ErrEmptySession) {
		t.Errorf("expected ErrEmptySession after reset, got %v", err)
	}
}

func TestQualitativeTiers(t *testing.T) {
	cases := []struct {
		metric string
		score  float64
		want   string
	}{
		{"confidence", 85, "Excellent confidence! You appeared very self-assured and composed throughout."},
		{"confidence", 80, "Excellent confidence! You appeared very self-assured and composed throughout."},
		{"confidence", 79.9, "Good confidence level. You appeared fairly confident most of the time."},
		{"confidence", 10, "Low confidence detected. Practice maintaining a relaxed, positive demeanour."},
		{"nervousness", 70, "High nervousness detected. Consider deep-breathing exercises before interviews."},
		{"nervousness", 5, "Very calm and composed. Minimal signs of nervousness."},
		{"overall", 60, "Good performance overall. A few areas to polish for perfection."},
		{"unknown", 90, ""},
	}
	for _, c := range cases {
		if got := Qualitative(c.metric, c.score); got != c.want {
			t.Errorf("Qualitative(%q, %v) = %q; want %q", c.metric, c.score, got, c.want)
		}
	}
}

package facial

import (
	"math"
	"testing"

	"interview-insights-go/internal/types"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeInterviewMetricsWorkedExample(t *testing.T) {
	dist := types.EmotionDistribution{
		"happy": 50, "neutral": 30, "surprise": 10,
		"angry": 5, "disgust": 2, "sad": 2, "fear": 1,
	}
	m := ComputeInterviewMetrics(dist, EyeContactFull, true)

	if !almostEqual(m.Confidence, 75.3) {
		t.Errorf("confidence = %v; want 75.3", m.Confidence)
	}
	if !almostEqual(m.Nervousness, 12.7) {
		t.Errorf("nervousness = %v; want 12.7", m.Nervousness)
	}
	if !almostEqual(m.Engagement, 91.0) {
		t.Errorf("engagement = %v; want 91.0", m.Engagement)
	}
}

func TestComputeInterviewMetricsNoFace(t *testing.T) {
	dist := types.EmotionDistribution{"happy": 100}
	m := ComputeInterviewMetrics(dist, EyeContactFull, false)
	if m != (types.InterviewMetrics{}) {
		t.Errorf("no-face metrics = %+v; want all zero", m)
	}
}

func TestComputeInterviewMetricsEmptyDistribution(t *testing.T) {
	m := ComputeInterviewMetrics(types.EmotionDistribution{}, EyeContactFull, true)
	if m != (types.InterviewMetrics{}) {
		t.Errorf("empty-distribution metrics = %+v; want all zero", m)
	}
}

func TestComputeInterviewMetricsClampsAdversarialInput(t *testing.T) {
	dist := types.EmotionDistribution{
		"happy": 1e6, "neutral": 1e6, "fear": 1e6, "sad": 1e6,
	}
	m := ComputeInterviewMetrics(dist, EyeContactFull, true)
	for name, v := range map[string]float64{
		"confidence":  m.Confidence,
		"nervousness": m.Nervousness,
		"engagement":  m.Engagement,
	} {
		if v < 0 || v > 100 {
			t.Errorf("%s = %v; want within [0,100]", name, v)
		}
	}
}

func TestEyeContactScore(t *testing.T) {
	cases := []struct {
		face, eyes bool
		want       float64
	}{
		{false, false, EyeContactNone},
		{false, true, EyeContactNone},
		{true, false, EyeContactFace},
		{true, true, EyeContactFull},
	}
	for _, c := range cases {
		if got := EyeContactScore(c.face, c.eyes); got != c.want {
			t.Errorf("EyeContactScore(%v, %v) = %v; want %v", c.face, c.eyes, got, c.want)
		}
	}
}

func TestAnalyzeFrameStabilizesEmotion(t *testing.T) {
	a := NewAnalyzer(5, nil, nil)
	box := &types.FaceBox{X: 10, Y: 10, W: 120, H: 120}

	obs := func(dominant string) *types.FrameObservation {
		return &types.FrameObservation{
			Emotions:        types.EmotionDistribution{dominant: 90, "neutral": 10},
			DominantEmotion: dominant,
			FaceBox:         box,
			EyesDetected:    true,
		}
	}

	a.AnalyzeFrame(obs("happy"))
	a.AnalyzeFrame(obs("happy"))
	res := a.AnalyzeFrame(obs("surprise"))

	if res.RawEmotion != "surprise" {
		t.Errorf("raw emotion = %q; want surprise", res.RawEmotion)
	}
	if res.Emotion != "happy" {
		t.Errorf("stabilized emotion = %q; want happy", res.Emotion)
	}
	if res.EyeContactScore != EyeContactFull {
		t.Errorf("eye contact = %v; want %v", res.EyeContactScore, EyeContactFull)
	}
	if !res.Success || !res.IsFacePresent {
		t.Errorf("expected successful face-present result, got %+v", res)
	}
}

func TestAnalyzeFrameNilObservation(t *testing.T) {
	a := NewAnalyzer(5, nil, nil)
	res := a.AnalyzeFrame(nil)
	if res.Success || res.IsFacePresent {
		t.Errorf("nil observation should fail analysis, got %+v", res)
	}
	if res.Error == "" {
		t.Error("nil observation should carry an error message")
	}
	if res.Metrics != (types.InterviewMetrics{}) {
		t.Errorf("nil observation metrics = %+v; want zero", res.Metrics)
	}
}

func TestAnalyzeFrameZeroSizeBoxIsNoFace(t *testing.T) {
	a := NewAnalyzer(5, nil, nil)
	res := a.AnalyzeFrame(&types.FrameObservation{
		Emotions:        types.EmotionDistribution{"happy": 90},
		DominantEmotion: "happy",
		FaceBox:         &types.FaceBox{W: 0, H: 0},
	})
	if res.IsFacePresent {
		t.Error("zero-size face box should not count as a face")
	}
	if res.Metrics != (types.InterviewMetrics{}) {
		t.Errorf("metrics = %+v; want zero", res.Metrics)
	}
}

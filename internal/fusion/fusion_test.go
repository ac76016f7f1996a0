package fusion

import (
	"math"
	"strings"
	"testing"

	"interview-insights-go/internal/types"
)

func TestFuseNilInputs(t *testing.T) {
	res := Fuse(nil, nil)
	if res.FinalScore != 0.0 {
		t.Errorf("final score = %v; want 0.0", res.FinalScore)
	}
	if res.Label != "Poor" {
		t.Errorf("label = %q; want Poor", res.Label)
	}
	if res.VoiceEmotion != "N/A" || res.FaceEmotion != "N/A" {
		t.Errorf("emotions = %q/%q; want N/A/N/A", res.VoiceEmotion, res.FaceEmotion)
	}
}

func TestFuseWeightedAverage(t *testing.T) {
	res := Fuse(
		&types.FusionInput{Score: 85, Emotion: "happy"},
		&types.FusionInput{Score: 60, Emotion: "neutral"},
	)
	// 0.6*85 + 0.4*60 = 75
	if res.FinalScore != 75.0 {
		t.Errorf("final score = %v; want 75.0", res.FinalScore)
	}
	if res.Label != "Good" {
		t.Errorf("label = %q; want Good", res.Label)
	}
}

func TestFusePerfectScore(t *testing.T) {
	res := Fuse(
		&types.FusionInput{Score: 100, Emotion: "happy"},
		&types.FusionInput{Score: 100, Emotion: "happy"},
	)
	if res.FinalScore != 100.0 || res.Label != "Outstanding" {
		t.Errorf("got %v/%q; want 100.0/Outstanding", res.FinalScore, res.Label)
	}
}

func TestFuseTierBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{90, "Outstanding"},
		{89.99, "Excellent"},
		{80, "Excellent"},
		{70, "Good"},
		{60, "Satisfactory"},
		{50, "Needs Improvement"},
		{49.99, "Poor"},
		{0, "Poor"},
	}
	for _, c := range cases {
		label, feedback := lookupFeedback(c.score)
		if label != c.want {
			t.Errorf("lookupFeedback(%v) label = %q; want %q", c.score, label, c.want)
		}
		if feedback == "" {
			t.Errorf("lookupFeedback(%v) returned empty feedback", c.score)
		}
	}
}

func TestFuseNaNScoresZero(t *testing.T) {
	res := Fuse(
		&types.FusionInput{Score: math.NaN(), Emotion: "happy"},
		&types.FusionInput{Score: math.Inf(1), Emotion: "neutral"},
	)
	if res.FinalScore != 0.0 {
		t.Errorf("final score = %v; want 0.0", res.FinalScore)
	}
}

func TestFuseClampsOutOfRange(t *testing.T) {
	res := Fuse(
		&types.FusionInput{Score: 500, Emotion: "happy"},
		&types.FusionInput{Score: 500, Emotion: "happy"},
	)
	if res.FinalScore != 100.0 {
		t.Errorf("final score = %v; want 100.0", res.FinalScore)
	}
}

func TestEmotionSummaryConjunction(t *testing.T) {
	cases := []struct {
		voice, face string
		want        string
	}{
		{"confident", "happy", "and"},
		{"nervous", "happy", "but"},
		{"confident", "nervous", "but"},
		{"nervous", "sad", "and"},
		{"Monotone", "Happy", "but"},
	}
	for _, c := range cases {
		got := emotionSummary(c.voice, c.face)
		if !strings.Contains(got, ", "+c.want+" your") {
			t.Errorf("emotionSummary(%q, %q) = %q; want conjunction %q", c.voice, c.face, got, c.want)
		}
	}
}

func TestEmotionSummaryFormat(t *testing.T) {
	got := emotionSummary("Confident", "happy")
	want := "Your tone was Confident, and your facial expression appeared happy."
	if got != want {
		t.Errorf("summary = %q; want %q", got, want)
	}
}

func TestCoerceScore(t *testing.T) {
	cases := []struct {
		in   any
		want float64
	}{
		{75.5, 75.5},
		{float32(10), 10},
		{42, 42},
		{int64(7), 7},
		{"88.25", 88.25},
		{"garbage", 0},
		{nil, 0},
		{map[string]any{}, 0},
		{true, 0},
	}
	for _, c := range cases {
		if got := CoerceScore(c.in); got != c.want {
			t.Errorf("CoerceScore(%#v) = %v; want %v", c.in, got, c.want)
		}
	}
}

func TestLooseInputNil(t *testing.T) {
	var l *LooseInput
	if l.Input() != nil {
		t.Error("nil LooseInput should convert to nil")
	}
}

func TestLooseInputConverts(t *testing.T) {
	l := &LooseInput{Score: "64", Emotion: "neutral"}
	in := l.Input()
	if in.Score != 64 || in.Emotion != "neutral" {
		t.Errorf("converted input = %+v; want {64 neutral}", in)
	}
}

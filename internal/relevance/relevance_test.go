package relevance

import (
	"errors"
	"testing"
)

type stubScorer struct {
	similarity float64
	err        error
	called     bool
}

func (s *stubScorer) Similarity(user, reference string) (float64, error) {
	s.called = true
	return s.similarity, s.err
}

func TestEvaluateEmptyAnswerShortCircuits(t *testing.T) {
	s := &stubScorer{similarity: 0.9}
	ev, err := Evaluate(s, "   ", "A linked list is a chain of nodes.")
	if !errors.Is(err, ErrNoAnswer) {
		t.Fatalf("expected ErrNoAnswer, got %v", err)
	}
	if ev.Score != 0 || ev.Feedback != "No answer provided. Please enter your response." {
		t.Errorf("evaluation = %+v; want zero score with no-answer feedback", ev)
	}
	if s.called {
		t.Error("similarity backend should not be invoked for an empty answer")
	}
}

func TestEvaluateEmptyReferenceShortCircuits(t *testing.T) {
	s := &stubScorer{similarity: 0.9}
	ev, err := Evaluate(s, "Nodes linked by pointers.", "")
	if !errors.Is(err, ErrNoReference) {
		t.Fatalf("expected ErrNoReference, got %v", err)
	}
	if ev.Score != 0 || ev.Feedback != "No reference answer available for comparison." {
		t.Errorf("evaluation = %+v; want zero score with no-reference feedback", ev)
	}
	if s.called {
		t.Error("similarity backend should not be invoked without a reference")
	}
}

func TestEvaluatePropagatesScorerError(t *testing.T) {
	wantErr := errors.New("backend down")
	s := &stubScorer{err: wantErr}
	if _, err := Evaluate(s, "answer", "reference"); !errors.Is(err, wantErr) {
		t.Fatalf("expected scorer error, got %v", err)
	}
}

func TestEvaluateTiersSimilarity(t *testing.T) {
	s := &stubScorer{similarity: 0.82}
	ev, err := Evaluate(s, "answer", "reference")
	if err != nil {
		t.Fatal(err)
	}
	if ev.Score != 82.0 {
		t.Errorf("score = %v; want 82.0", ev.Score)
	}
	if ev.Feedback != "Very good answer! Strong relevance with minor room for improvement." {
		t.Errorf("feedback = %q; want the 80-tier sentence", ev.Feedback)
	}
}

func TestFromSimilarityTiers(t *testing.T) {
	cases := []struct {
		similarity float64
		wantScore  float64
		wantText   string
	}{
		{0.95, 95.0, "Excellent answer! Highly relevant and comprehensive."},
		{0.90, 90.0, "Excellent answer! Highly relevant and comprehensive."},
		{0.75, 75.0, "Good answer! Relevant but could include more details."},
		{0.65, 65.0, "Satisfactory answer. Relevant but lacks depth and detail."},
		{0.55, 55.0, "Partially relevant. Misses key concepts or details."},
		{0.35, 35.0, "Weak answer. Limited relevance to the reference answer."},
		{0.10, 10.0, "Off-topic or irrelevant. Please review the question carefully."},
	}
	for _, c := range cases {
		ev := FromSimilarity(c.similarity)
		if ev.Score != c.wantScore {
			t.Errorf("FromSimilarity(%v) score = %v; want %v", c.similarity, ev.Score, c.wantScore)
		}
		if ev.Feedback != c.wantText {
			t.Errorf("FromSimilarity(%v) feedback = %q; want %q", c.similarity, ev.Feedback, c.wantText)
		}
	}
}

func TestFromSimilarityClamps(t *testing.T) {
	if ev := FromSimilarity(-0.4); ev.Score != 0 {
		t.Errorf("negative similarity score = %v; want 0", ev.Score)
	}
	if ev := FromSimilarity(1.7); ev.Score != 100 {
		t.Errorf("oversized similarity score = %v; want 100", ev.Score)
	}
}

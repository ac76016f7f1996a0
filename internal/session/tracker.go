package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"interview-insights-go/internal/types"
)

// ErrEmptySession is returned by Reduce when no frames were ever
// recorded. A zeroed report would be indistinguishable from a session
// where every metric genuinely scored zero.
var ErrEmptySession = errors.New("no frames were analyzed during this session")

// Tracker accumulates per-frame metrics over one interview session.
// It is not safe for concurrent writers; the analysis pipeline owns it
// and callers serialize access.
type Tracker struct {
	id          string
	startTime   time.Time
	confidence  []float64
	nervousness []float64
	engagement  []float64
	eyeContact  []float64
	emotions    []string
	facePresent int
	totalFrames int
}

func NewTracker() *Tracker {
	return &Tracker{
		id:        uuid.New().String(),
		startTime: time.Now(),
	}
}

// ID returns the session identifier.
func (t *Tracker) ID() string { return t.id }

// Record accumulates one analyzed frame. Frames without a face count
// toward the total but contribute no metric samples, so every metric
// list stays exactly facePresent entries long.
func (t *Tracker) Record(res types.FrameAnalysisResult) {
	t.totalFrames++
	if !res.IsFacePresent {
		return
	}
	t.facePresent++
	t.confidence = append(t.confidence, res.Metrics.Confidence)
	t.nervousness = append(t.nervousness, res.Metrics.Nervousness)
	t.engagement = append(t.engagement, res.Metrics.Engagement)
	t.eyeContact = append(t.eyeContact, res.EyeContactScore)
	t.emotions = append(t.emotions, res.Emotion)
}

// Reduce computes the end-of-session report. Safe to call repeatedly;
// it never mutates the accumulator.
func (t *Tracker) Reduce() (types.SessionReport, error) {
	if t.totalFrames == 0 {
		return types.SessionReport{}, ErrEmptySession
	}

	faceRate := float64(t.facePresent) / float64(t.totalFrames) * 100.0

	avgConf := round1(mean(t.confidence))
	avgNerv := round1(mean(t.nervousness))
	avgEng := round1(mean(t.engagement))
	avgEye := round1(mean(t.eyeContact))

	overall := round1(avgConf*0.30 + (100-avgNerv)*0.25 + avgEng*0.25 + avgEye*0.20)

	dist := map[string]int{}
	for _, e := range t.emotions {
		dist[e]++
	}

	return types.SessionReport{
		SessionID:           t.id,
		DurationSeconds:     round1(time.Since(t.startTime).Seconds()),
		TotalFramesAnalyzed: t.totalFrames,
		FacePresenceRate:    round1(faceRate),
		AvgConfidence:       avgConf,
		AvgNervousness:      avgNerv,
		AvgEngagement:       avgEng,
		AvgEyeContact:       avgEye,
		OverallScore:        overall,
		EmotionDistribution: dist,
		ConfidenceFeedback:  Qualitative("confidence", avgConf),
		NervousnessFeedback: Qualitative("nervousness", avgNerv),
		EngagementFeedback:  Qualitative("engagement", avgEng),
		EyeContactFeedback:  Qualitative("eye_contact", avgEye),
		OverallFeedback:     Qualitative("overall", overall),
	}, nil
}

// Reset discards all accumulated state and starts a new session clock.
func (t *Tracker) Reset() {
	*t = Tracker{
		id:        uuid.New().String(),
		startTime: time.Now(),
	}
}

// TotalFrames reports how many frames were recorded, face or not.
func (t *Tracker) TotalFrames() int { return t.totalFrames }

// FacePresentFrames reports how many recorded frames had a face.
func (t *Tracker) FacePresentFrames() int { return t.facePresent }

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

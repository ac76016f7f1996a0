package facial

import (
	"math"

	"github.com/sirupsen/logrus"

	"interview-insights-go/internal/session"
	"interview-insights-go/internal/types"
)

// Analyzer turns one frame's classifier output into a FrameAnalysisResult
// and feeds the session tracker. The neural classifier itself lives in an
// external service; the Analyzer only sees its already-materialized
// observation.
type Analyzer struct {
	stabilizer *Stabilizer
	tracker    *session.Tracker
	log        *logrus.Entry
	frameCount int
}

func NewAnalyzer(historySize int, tracker *session.Tracker, log *logrus.Entry) *Analyzer {
	return &Analyzer{
		stabilizer: NewStabilizer(historySize),
		tracker:    tracker,
		log:        log,
	}
}

// AnalyzeFrame evaluates one observation. A nil observation represents a
// failed frame analysis: it is still counted by the session tracker but
// contributes no scores.
func (a *Analyzer) AnalyzeFrame(obs *types.FrameObservation) types.FrameAnalysisResult {
	a.frameCount++

	res := types.FrameAnalysisResult{
		Emotion:     "neutral",
		RawEmotion:  "neutral",
		AllEmotions: types.EmotionDistribution{},
	}

	if obs == nil {
		res.Error = "frame analysis unavailable"
		a.record(res)
		return res
	}

	facePresent := obs.FaceBox != nil && obs.FaceBox.W > 0 && obs.FaceBox.H > 0
	res.EyeContactScore = EyeContactScore(facePresent, obs.EyesDetected)

	if facePresent {
		res.IsFacePresent = true
		res.Success = true
		res.RawEmotion = obs.DominantEmotion
		res.Emotion = obs.DominantEmotion
		res.Confidence = math.Round(obs.Emotions[obs.DominantEmotion]*100) / 100
		res.AllEmotions = obs.Emotions
		res.FaceBox = obs.FaceBox
		a.stabilizer.Push(obs.DominantEmotion)

		if stable, ok := a.stabilizer.MostCommon(); ok {
			res.Emotion = stable
		}
	}

	res.Metrics = ComputeInterviewMetrics(res.AllEmotions, res.EyeContactScore, res.IsFacePresent)

	a.record(res)
	return res
}

func (a *Analyzer) record(res types.FrameAnalysisResult) {
	if a.tracker == nil {
		return
	}
	a.tracker.Record(res)
	if a.log != nil && !res.IsFacePresent {
		a.log.WithField("frame", a.frameCount).Debug("no face in frame")
	}
}

// FrameCount reports how many frames have been submitted.
func (a *Analyzer) FrameCount() int { return a.frameCount }

// Reset clears the emotion window. Session state is owned by the tracker
// and reset separately.
func (a *Analyzer) Reset() {
	a.stabilizer.Reset()
	a.frameCount = 0
}

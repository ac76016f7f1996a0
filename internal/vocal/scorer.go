package vocal

import (
	"errors"
	"math"

	"interview-insights-go/internal/types"
)

// ErrInsufficientAudio is returned for clips shorter than MinClipSeconds;
// no scores are computed for them.
var ErrInsufficientAudio = errors.New("audio is too short (< 0.5 s) for meaningful analysis")

// MinClipSeconds is the shortest clip the scorer accepts.
const MinClipSeconds = 0.5

// Analysis mode markers.
const (
	ModeFull  = "full"
	ModeQuick = "quick"
)

// Neutral stand-ins for the deep feature summary, used by quick mode
// when the neural extraction step is skipped.
var quickDeepFeatures = types.DeepFeatureSummary{
	ActivationEnergy:    15.0,
	TemporalVariability: 5.0,
	MeanDispersion:      3.0,
	FeatureKurtosis:     3.0,
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Score evaluates one clip from its signal statistics and deep-feature
// summary. The weights and normalization constants below are contract,
// not tunables.
func Score(sig types.AcousticFeatureSet, deep types.DeepFeatureSummary) (types.VocalClipMetrics, error) {
	return score(sig, deep, ModeFull)
}

// ScoreQuick evaluates a clip from signal statistics alone, substituting
// fixed neutral constants for the deep features. Same formulas, cheaper
// inputs; the result carries the quick mode marker.
func ScoreQuick(sig types.AcousticFeatureSet) (types.VocalClipMetrics, error) {
	return score(sig, quickDeepFeatures, ModeQuick)
}

func score(sig types.AcousticFeatureSet, deep types.DeepFeatureSummary, mode string) (types.VocalClipMetrics, error) {
	if sig.Duration < MinClipSeconds {
		return types.VocalClipMetrics{}, ErrInsufficientAudio
	}

	// Clarity: voiced ratio, articulation (centroid), noisiness (zcr),
	// richness of the deep activations.
	clarityVoiced := sig.VoicedRatio * 100
	clarityArticulation := clamp((sig.CentroidMean-500)/35, 0, 100)
	clarityNoise := clamp(100-sig.ZCRMean*1000, 0, 100)
	clarityDeep := clamp(deep.ActivationEnergy*3, 0, 100)
	clarity := clarityVoiced*0.30 + clarityArticulation*0.25 + clarityNoise*0.20 + clarityDeep*0.25

	// Confidence: stable volume and pitch, a 3-6 syl/s pace, few pauses,
	// consistent deep features.
	confVolume := clamp(100-sig.RMSCV*150, 0, 100)
	confPitch := clamp(100-sig.PitchCV*200, 0, 100)
	confRate := clamp(100-math.Abs(sig.SyllableRate-4.5)*30, 0, 100)
	confPause := clamp(100-sig.PauseRatio*300, 0, 100)
	confDeep := clamp(100-deep.MeanDispersion*20, 0, 100)
	confidence := confVolume*0.25 + confPitch*0.20 + confRate*0.20 + confPause*0.15 + confDeep*0.20

	// Tone: pitch expressiveness, energy, warmth, reward for not being
	// monotone, temporal dynamics of the deep features.
	expressiveness := clamp(sig.PitchCV*250, 0, 100)
	energy := clamp(sig.RMSMean*500, 0, 100)
	warmth := clamp(100-(sig.CentroidMean-1000)/40, 0, 100)
	monotone := clamp(100-expressiveness, 0, 100)
	deepExpressiveness := clamp(deep.TemporalVariability*10, 0, 100)
	tone := expressiveness*0.30 + energy*0.20 + warmth*0.15 + (100-monotone)*0.15 + deepExpressiveness*0.20

	// Hesitation: pause frequency and pause share of the clip.
	pausesPerMin := float64(sig.PauseCount) / sig.Duration * 60
	hesitationPauses := clamp(pausesPerMin*8, 0, 100)
	hesitationRatio := clamp(sig.PauseRatio*300, 0, 100)
	hesitation := hesitationPauses*0.50 + hesitationRatio*0.50

	// Stress: jitter/shimmer perturbation, raised pitch, unstable deep
	// features.
	stressJitter := clamp(sig.Jitter*500, 0, 100)
	stressShimmer := clamp(sig.Shimmer*300, 0, 100)
	stressPitch := clamp((sig.PitchMean-250)/3, 0, 100)
	stressDeep := clamp(deep.MeanDispersion*15, 0, 100)
	stress := stressJitter*0.30 + stressShimmer*0.25 + stressPitch*0.20 + stressDeep*0.25

	m := types.VocalClipMetrics{
		ClarityScore:    round1(clamp(clarity, 0, 100)),
		ConfidenceScore: round1(clamp(confidence, 0, 100)),
		ToneScore:       round1(clamp(tone, 0, 100)),
		HesitationScore: round1(clamp(hesitation, 0, 100)),
		StressScore:     round1(clamp(stress, 0, 100)),
		MonotoneLevel:   round1(monotone),
		Mode:            mode,
	}

	overall := m.ClarityScore*0.25 + m.ConfidenceScore*0.25 + m.ToneScore*0.20 +
		(100-m.HesitationScore)*0.15 + (100-m.StressScore)*0.15
	m.OverallScore = round1(clamp(overall, 0, 100))
	m.Feedback = generateFeedback(m)
	return m, nil
}

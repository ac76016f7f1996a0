package fusion

import (
	"encoding/json"
	"strconv"

	"interview-insights-go/internal/types"
)

// LooseInput decodes modality payloads from callers that are not strict
// about types: scores may arrive as numbers, numeric strings, or junk.
// Junk coerces to 0 rather than failing the fusion call.
type LooseInput struct {
	Score   any    `json:"score"`
	Emotion string `json:"emotion"`
}

// Input converts to the typed record the engine consumes.
func (l *LooseInput) Input() *types.FusionInput {
	if l == nil {
		return nil
	}
	return &types.FusionInput{
		Score:   CoerceScore(l.Score),
		Emotion: l.Emotion,
	}
}

// CoerceScore extracts a float from whatever the caller sent, defaulting
// to 0 on anything non-numeric.
func CoerceScore(v any) float64 {
	switch s := v.(type) {
	case float64:
		return s
	case float32:
		return float64(s)
	case int:
		return float64(s)
	case int64:
		return float64(s)
	case json.Number:
		f, err := s.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

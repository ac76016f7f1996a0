package clients

import (
	"context"

	"interview-insights-go/internal/types"
)

// --- Voice feature extractor (/extract-features) ---

type ExtractReq struct {
	AudioPath string `json:"audio_path"`
	Quick     bool   `json:"quick"`
}

type ExtractResp struct {
	Signal types.AcousticFeatureSet  `json:"signal"`
	Deep   *types.DeepFeatureSummary `json:"deep,omitempty"`
}

// ExtractFeatures asks the extractor service for the signal statistics
// of one clip. With quick set, the service skips the neural embedding
// pass and Deep comes back nil.
func (h *HTTP) ExtractFeatures(ctx context.Context, url, audioPath string, quick bool) (*ExtractResp, error) {
	var out ExtractResp
	if err := h.postJSON(ctx, url+"/extract-features", ExtractReq{AudioPath: audioPath, Quick: quick}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

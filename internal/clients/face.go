package clients

import (
	"context"

	"interview-insights-go/internal/types"
)

// --- Face analyzer (/analyze-frame) ---

type FrameReq struct {
	ImageB64 string `json:"image_b64"`
}

// AnalyzeFrame submits one encoded frame to the facial classifier
// service and returns its raw observation. The service reports a nil
// face box when no face is found.
func (h *HTTP) AnalyzeFrame(ctx context.Context, url, imageB64 string) (*types.FrameObservation, error) {
	var out types.FrameObservation
	if err := h.postJSON(ctx, url+"/analyze-frame", FrameReq{ImageB64: imageB64}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

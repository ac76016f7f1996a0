package clients

import "context"

// --- Sentence similarity (/similarity) ---

type SimilarityReq struct {
	TextA string `json:"text_a"`
	TextB string `json:"text_b"`
}

type SimilarityResp struct {
	Similarity float64 `json:"similarity"`
}

// Similarity returns the cosine similarity the embedding service
// computes between two texts.
func (h *HTTP) Similarity(ctx context.Context, url, a, b string) (float64, error) {
	var out SimilarityResp
	if err := h.postJSON(ctx, url+"/similarity", SimilarityReq{TextA: a, TextB: b}, &out); err != nil {
		return 0, err
	}
	return out.Similarity, nil
}

// SimilarityScorer adapts the HTTP client to the relevance package's
// scorer interface for a fixed service URL.
type SimilarityScorer struct {
	HTTP *HTTP
	URL  string
	Ctx  context.Context
}

func (s SimilarityScorer) Similarity(userAnswer, referenceAnswer string) (float64, error) {
	ctx := s.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return s.HTTP.Similarity(ctx, s.URL, userAnswer, referenceAnswer)
}

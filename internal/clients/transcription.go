package clients

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// --- Transcription service (/transcribe, /status) ---

// Languages the speech-to-text engine supports.
var SupportedLanguages = map[string]string{
	"en": "English",
	"ur": "Urdu",
}

type TranscribeReq struct {
	AudioPath string `json:"audio_path"`
	Language  string `json:"language,omitempty"`
}

type TranscribeResp struct {
	MediaID  string `json:"media_id"`
	Status   string `json:"status"` // Queued, Processing, Success, Failed
	Text     string `json:"text,omitempty"`
	Language string `json:"language,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// Transcript is the finished transcription of one audio clip.
type Transcript struct {
	Text     string
	Language string
}

// Transcribe submits a clip and polls until the engine finishes. An
// explicitly requested or detected language outside the supported set
// fails rather than returning text the scorers cannot evaluate.
func (h *HTTP) Transcribe(ctx context.Context, serviceURL, audioPath, language string) (*Transcript, error) {
	if language != "" {
		if _, ok := SupportedLanguages[language]; !ok {
			return nil, fmt.Errorf("unsupported language %q (supported: %s)", language, supportedList())
		}
	}

	var pub TranscribeResp
	if err := h.postJSON(ctx, serviceURL+"/transcribe", TranscribeReq{AudioPath: audioPath, Language: language}, &pub); err != nil {
		return nil, fmt.Errorf("transcribe publish: %w", err)
	}
	if pub.Status == "Success" {
		return finishTranscript(pub)
	}
	if pub.Status == "Failed" {
		return nil, fmt.Errorf("transcription failed: %s", pub.Reason)
	}

	statusURL, err := url.Parse(serviceURL + "/status")
	if err != nil {
		return nil, err
	}
	q := statusURL.Query()
	q.Set("media_id", pub.MediaID)
	statusURL.RawQuery = q.Encode()

	// Poll up to ~60 seconds.
	for i := 0; i < 40; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(1500 * time.Millisecond):
		}

		var st TranscribeResp
		if err := h.getJSON(ctx, statusURL.String(), &st); err != nil {
			continue
		}
		switch st.Status {
		case "Success":
			return finishTranscript(st)
		case "Queued", "Processing":
			continue
		case "Failed":
			return nil, fmt.Errorf("transcription failed: %s", st.Reason)
		}
	}
	return nil, fmt.Errorf("timeout: transcription did not complete")
}

func finishTranscript(r TranscribeResp) (*Transcript, error) {
	if _, ok := SupportedLanguages[r.Language]; !ok {
		return nil, fmt.Errorf("detected language %q is not supported (supported: %s)", r.Language, supportedList())
	}
	return &Transcript{Text: r.Text, Language: r.Language}, nil
}

func supportedList() string {
	parts := make([]string, 0, len(SupportedLanguages))
	for code, name := range SupportedLanguages {
		parts = append(parts, fmt.Sprintf("%s (%s)", code, name))
	}
	return strings.Join(parts, ", ")
}

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"interview-insights-go/internal/clients"
	"interview-insights-go/internal/config"
	"interview-insights-go/internal/facial"
	"interview-insights-go/internal/fusion"
	"interview-insights-go/internal/interviewer"
	"interview-insights-go/internal/logger"
	"interview-insights-go/internal/questionbank"
	"interview-insights-go/internal/relevance"
	"interview-insights-go/internal/session"
	"interview-insights-go/internal/types"
	"interview-insights-go/internal/vocal"
)

type app struct {
	cfg  *config.Root
	log  *logger.Logger
	http *clients.HTTP

	mu       sync.Mutex
	tracker  *session.Tracker
	analyzer *facial.Analyzer
	clips    []types.VocalClipMetrics

	bank      *questionbank.Bank
	conductor *interviewer.Conductor
}

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "interview-insights-go").Info("starting service")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Warn("no config file found, using defaults")
		cfg = config.Default()
	}

	a := &app{
		cfg:     cfg,
		log:     log,
		http:    clients.NewHTTP(),
		tracker: session.NewTracker(),
	}
	a.analyzer = facial.NewAnalyzer(cfg.Facial.HistorySize, a.tracker, log.WithComponent("facial"))

	// Question bank is optional; the /questions endpoint falls back to
	// Gemini when the workbook is missing.
	bankPath := envOr("QUESTION_BANK_PATH", cfg.Paths.QuestionBank)
	if bankPath != "" {
		questions, err := questionbank.Load(bankPath)
		if err != nil {
			log.WithError(err).WithField("path", bankPath).Warn("question bank not loaded")
		} else {
			a.bank = questionbank.NewBank(questions)
			log.WithField("questions", a.bank.Len()).Info("question bank loaded")
		}
	}

	if os.Getenv("GEMINI_API_KEY") != "" {
		conductor, err := interviewer.NewConductor(context.Background())
		if err != nil {
			log.WithError(err).Warn("interviewer disabled")
		} else {
			a.conductor = conductor
			log.Info("interviewer ready")
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", a.handleHealth)
	mux.HandleFunc("/frame", a.handleFrame)
	mux.HandleFunc("/voice", a.handleVoice)
	mux.HandleFunc("/fuse", a.handleFuse)
	mux.HandleFunc("/session/feedback", a.handleSessionFeedback)
	mux.HandleFunc("/session/reset", a.handleSessionReset)
	mux.HandleFunc("/evaluate", a.handleEvaluate)
	mux.HandleFunc("/questions", a.handleQuestions)
	mux.HandleFunc("/transcribe", a.handleTranscribe)

	addr := envOr("PORT_ADDR", cfg.Server.Addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Timeout(),
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Fatal("server terminated")
	}
}

func (a *app) handleHealth(w http.ResponseWriter, r *http.Request) {
	a.log.WithRequest(r).Info("health check")
	fmt.Fprint(w, "ok")
}

// handleFrame scores one frame observation. An explicit null body marks
// a failed frame: it counts toward the session but contributes nothing.
func (a *app) handleFrame(w http.ResponseWriter, r *http.Request) {
	reqLog := a.log.WithRequest(r).WithField("handler", "frame")
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var obs *types.FrameObservation
	if err := json.NewDecoder(r.Body).Decode(&obs); err != nil {
		reqLog.WithError(err).Warn("bad frame payload")
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	a.mu.Lock()
	res := a.analyzer.AnalyzeFrame(obs)
	a.mu.Unlock()

	reqLog.WithFields(logrus.Fields{
		"face_present": res.IsFacePresent,
		"emotion":      res.Emotion,
	}).Info("frame analyzed")
	writeJSON(w, reqLog, http.StatusOK, res)
}

type voiceRequest struct {
	AudioPath string                    `json:"audio_path,omitempty"`
	Signal    *types.AcousticFeatureSet `json:"signal,omitempty"`
	Deep      *types.DeepFeatureSummary `json:"deep,omitempty"`
}

// handleVoice scores one audio clip. Callers either post the features
// directly or post an audio_path for the extractor service to process.
// ?quick=1 skips the deep-feature pass.
func (a *app) handleVoice(w http.ResponseWriter, r *http.Request) {
	reqLog := a.log.WithRequest(r).WithField("handler", "voice")
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	quick := r.URL.Query().Get("quick") == "1"

	var req voiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	signal := req.Signal
	deep := req.Deep
	if signal == nil && req.AudioPath != "" {
		extractorURL := a.cfg.Services.VoiceExtractor.URL
		if extractorURL == "" {
			http.Error(w, "voice extractor service not configured", http.StatusServiceUnavailable)
			return
		}
		features, err := a.http.ExtractFeatures(r.Context(), extractorURL, req.AudioPath, quick)
		if err != nil {
			reqLog.WithError(err).Error("feature extraction failed")
			http.Error(w, "feature extraction failed", http.StatusBadGateway)
			return
		}
		signal = &features.Signal
		deep = features.Deep
	}
	if signal == nil {
		http.Error(w, "missing signal features or audio_path", http.StatusBadRequest)
		return
	}

	var metrics types.VocalClipMetrics
	var err error
	if quick || deep == nil {
		metrics, err = vocal.ScoreQuick(*signal)
	} else {
		metrics, err = vocal.Score(*signal, *deep)
	}
	if err != nil {
		if errors.Is(err, vocal.ErrInsufficientAudio) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		reqLog.WithError(err).Error("voice scoring failed")
		http.Error(w, "voice scoring failed", http.StatusInternalServerError)
		return
	}

	a.mu.Lock()
	a.clips = append(a.clips, metrics)
	a.mu.Unlock()

	reqLog.WithField("overall", metrics.OverallScore).Info("clip scored")
	writeJSON(w, reqLog, http.StatusOK, metrics)
}

type fuseRequest struct {
	Voice *fusion.LooseInput `json:"voice"`
	Face  *fusion.LooseInput `json:"face"`
}

func (a *app) handleFuse(w http.ResponseWriter, r *http.Request) {
	reqLog := a.log.WithRequest(r).WithField("handler", "fuse")
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req fuseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	res := fusion.Fuse(req.Voice.Input(), req.Face.Input())
	reqLog.WithField("final_score", res.FinalScore).Info("fused")
	writeJSON(w, reqLog, http.StatusOK, res)
}

// handleSessionFeedback reduces the current session. It also reports
// the voice-side summary so the orchestrating layer can feed /fuse.
func (a *app) handleSessionFeedback(w http.ResponseWriter, r *http.Request) {
	reqLog := a.log.WithRequest(r).WithField("handler", "session-feedback")

	a.mu.Lock()
	report, err := a.tracker.Reduce()
	voiceSummary := session.SummarizeClips(a.clips)
	a.mu.Unlock()

	if err != nil {
		if errors.Is(err, session.ErrEmptySession) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		reqLog.WithError(err).Error("session reduce failed")
		http.Error(w, "session reduce failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, reqLog, http.StatusOK, map[string]any{
		"facial": report,
		"voice":  voiceSummary,
	})
}

func (a *app) handleSessionReset(w http.ResponseWriter, r *http.Request) {
	reqLog := a.log.WithRequest(r).WithField("handler", "session-reset")
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	a.mu.Lock()
	a.tracker.Reset()
	a.analyzer.Reset()
	a.clips = nil
	sessionID := a.tracker.ID()
	a.mu.Unlock()

	reqLog.WithField("session_id", sessionID).Info("session reset")
	writeJSON(w, reqLog, http.StatusOK, map[string]string{"session_id": sessionID})
}

type evaluateRequest struct {
	Answer    string `json:"answer"`
	Reference string `json:"reference,omitempty"`
	Question  string `json:"question,omitempty"`
}

// handleEvaluate scores answer relevance. The reference answer comes
// from the request or, given a question, from the loaded bank.
func (a *app) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	reqLog := a.log.WithRequest(r).WithField("handler", "evaluate")
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	reference := req.Reference
	if reference == "" && req.Question != "" && a.bank != nil {
		if ref, ok := a.bank.Reference(req.Question); ok {
			reference = ref
		}
	}

	// Short-circuit validation never touches the similarity service.
	if ev, err := relevance.Validate(req.Answer, reference); err != nil {
		writeJSON(w, reqLog, http.StatusOK, ev)
		return
	}

	simURL := a.cfg.Services.Similarity.URL
	if simURL == "" {
		http.Error(w, "similarity service not configured", http.StatusServiceUnavailable)
		return
	}
	scorer := clients.SimilarityScorer{HTTP: a.http, URL: simURL, Ctx: r.Context()}
	ev, err := relevance.Evaluate(scorer, req.Answer, reference)
	if err != nil {
		reqLog.WithError(err).Error("similarity evaluation failed")
		http.Error(w, "similarity evaluation failed", http.StatusBadGateway)
		return
	}
	writeJSON(w, reqLog, http.StatusOK, ev)
}

func (a *app) handleQuestions(w http.ResponseWriter, r *http.Request) {
	reqLog := a.log.WithRequest(r).WithField("handler", "questions")

	role := r.URL.Query().Get("role")
	stack := r.URL.Query().Get("stack")
	difficulty := r.URL.Query().Get("difficulty")

	if a.bank != nil {
		if qs := a.bank.Find(role, difficulty); len(qs) > 0 {
			writeJSON(w, reqLog, http.StatusOK, qs)
			return
		}
	}
	if a.conductor == nil {
		http.Error(w, "no question bank loaded and interviewer not configured", http.StatusServiceUnavailable)
		return
	}

	questions, err := a.conductor.GenerateQuestions(r.Context(), role, stack, difficulty)
	if err != nil {
		reqLog.WithError(err).Error("question generation failed")
		http.Error(w, "question generation failed", http.StatusBadGateway)
		return
	}
	writeJSON(w, reqLog, http.StatusOK, questions)
}

type transcribeRequest struct {
	AudioPath string `json:"audio_path"`
	Language  string `json:"language,omitempty"`
}

func (a *app) handleTranscribe(w http.ResponseWriter, r *http.Request) {
	reqLog := a.log.WithRequest(r).WithField("handler", "transcribe")
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req transcribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AudioPath == "" {
		http.Error(w, "missing audio_path", http.StatusBadRequest)
		return
	}
	sttURL := a.cfg.Services.Transcription.URL
	if sttURL == "" {
		http.Error(w, "transcription service not configured", http.StatusServiceUnavailable)
		return
	}

	tr, err := a.http.Transcribe(r.Context(), sttURL, req.AudioPath, req.Language)
	if err != nil {
		reqLog.WithError(err).Error("transcription failed")
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, reqLog, http.StatusOK, map[string]string{
		"text":     tr.Text,
		"language": tr.Language,
	})
}

func writeJSON(w http.ResponseWriter, log *logrus.Entry, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.WithError(err).Error("failed to write response")
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

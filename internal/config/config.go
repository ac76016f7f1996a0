package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Service struct {
	URL string `yaml:"url"`
}

// Services holds the endpoints of the external model services the core
// consumes: the facial classifier, the voice feature extractor, the
// sentence-embedding similarity scorer, and the speech-to-text engine.
type Services struct {
	FaceAnalyzer   Service `yaml:"face_analyzer"`
	VoiceExtractor Service `yaml:"voice_extractor"`
	Similarity     Service `yaml:"similarity"`
	Transcription  Service `yaml:"transcription"`
}

type Facial struct {
	HistorySize int `yaml:"history_size"`
}

type Root struct {
	Server struct {
		Addr           string `yaml:"addr"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"server"`
	Services Services `yaml:"services"`
	Facial   Facial   `yaml:"facial"`
	Paths    struct {
		QuestionBank string `yaml:"question_bank"`
	} `yaml:"paths"`
}

// Load reads the YAML config from the first readable candidate path.
// CONFIG_ENV selects the environment directory, defaulting to dev.
func Load() (*Root, error) {
	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	guess := []string{
		filepath.Join("config", env, "config.yaml"),
		"config.yaml",
	}
	var lastErr error
	for _, p := range guess {
		f, err := os.Open(p)
		if err != nil {
			lastErr = err
			continue
		}
		var cfg Root
		err = yaml.NewDecoder(f).Decode(&cfg)
		f.Close()
		if err != nil {
			lastErr = err
			continue
		}
		cfg.applyDefaults()
		return &cfg, nil
	}
	return nil, lastErr
}

// Default returns a config usable without any file on disk.
func Default() *Root {
	var cfg Root
	cfg.applyDefaults()
	return &cfg
}

func (c *Root) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.TimeoutSeconds == 0 {
		c.Server.TimeoutSeconds = 60
	}
	if c.Facial.HistorySize == 0 {
		c.Facial.HistorySize = 5
	}
}

// Timeout returns the configured request timeout as a duration.
func (c *Root) Timeout() time.Duration {
	return time.Duration(c.Server.TimeoutSeconds) * time.Second
}

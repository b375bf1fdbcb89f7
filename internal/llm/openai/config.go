package openai

import (
	"log/slog"
	"net/http"
	"os"
	"time"
)

// BackoffPolicy controls the retry behavior for rate-limited calls:
// Attempts is the total number of tries, Delay yields the wait before the
// given retry (1-based).
type BackoffPolicy struct {
	Attempts int
	Delay    func(attempt int) time.Duration
}

// FixedDelay retries with the same wait every time.
func FixedDelay(attempts int, delay time.Duration) BackoffPolicy {
	return BackoffPolicy{
		Attempts: attempts,
		Delay:    func(int) time.Duration { return delay },
	}
}

// Config for the OpenAI client.
type Config struct {
	APIKey          string        // if empty, falls back to env OPENAI_API_KEY
	BaseURL         string        // default https://api.openai.com/v1
	GenerationModel string        // main offer generation, e.g. "gpt-4o"
	EstimationModel string        // cheap price estimation, e.g. "gpt-4o-mini"
	Temperature     float32       // 0..2
	Timeout         time.Duration // http client timeout
	Backoff         BackoffPolicy // applied to the generation call on 429
}

type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.GenerationModel == "" {
		cfg.GenerationModel = "gpt-4o"
	}
	if cfg.EstimationModel == "" {
		cfg.EstimationModel = "gpt-4o-mini"
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if cfg.Backoff.Attempts <= 0 {
		cfg.Backoff = FixedDelay(2, 120*time.Second)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger,
	}
}

package synthesizer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

// ProviderConfig configures the external text-to-speech endpoint.
type ProviderConfig struct {
	BaseURL   string        `json:"base_url" yaml:"base_url" env:"SYNTHESIS_BASE_URL"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout" default:"10s"`
	UserAgent string        `json:"user_agent" yaml:"user_agent"`
	Referer   string        `json:"referer" yaml:"referer"`
	ClientTag string        `json:"client_tag" yaml:"client_tag" default:"tw-ob"`
}

// NewProviderConfig builds a provider configuration with defaults.
func NewProviderConfig(baseURL string, timeout time.Duration) ProviderConfig {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return ProviderConfig{
		BaseURL:   baseURL,
		Timeout:   timeout,
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		Referer:   "https://translate.google.com/",
		ClientTag: "tw-ob",
	}
}

// ProviderClient fetches one audio fragment per call.
type ProviderClient interface {
	FetchAudio(ctx context.Context, text, voice string) ([]byte, error)
}

// HTTPProvider calls a translate_tts style endpoint over HTTP.
type HTTPProvider struct {
	opt    ProviderConfig
	client *http.Client
}

// NewHTTPProvider creates a provider client with a bounded per-call timeout.
func NewHTTPProvider(opt ProviderConfig) *HTTPProvider {
	return &HTTPProvider{
		opt: opt,
		client: &http.Client{
			Timeout: opt.Timeout,
		},
	}
}

// FetchAudio requests synthesized audio for a single chunk of text.
// Non-2xx responses and empty payloads are errors; the orchestrator decides
// whether to skip or fail.
func (p *HTTPProvider) FetchAudio(ctx context.Context, text, voice string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s?ie=UTF-8&q=%s&tl=%s&client=%s",
		p.opt.BaseURL, url.QueryEscape(text), url.QueryEscape(voice), url.QueryEscape(p.opt.ClientTag))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if p.opt.UserAgent != "" {
		req.Header.Set("User-Agent", p.opt.UserAgent)
	}
	if p.opt.Referer != "" {
		req.Header.Set("Referer", p.opt.Referer)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call synthesis provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logrus.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"body":        string(body),
		}).Error("synthesis provider error")
		return nil, fmt.Errorf("synthesis provider returned status %d", resp.StatusCode)
	}

	audioData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if len(audioData) == 0 {
		return nil, fmt.Errorf("empty audio data from synthesis provider")
	}

	return audioData, nil
}

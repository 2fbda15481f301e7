// Package whisper implements transcription.Provider against a faster-whisper
// HTTP sidecar, as a local alternative to the hosted recognizer.
package whisper

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shrutlekh/shrutlekh/httpclient"
	"github.com/shrutlekh/shrutlekh/provider"
	"github.com/shrutlekh/shrutlekh/transcription"
)

const (
	// ProviderName is the registered name for the Whisper provider.
	ProviderName = "whisper"

	defaultURL     = "http://localhost:8387"
	defaultModel   = "base"
	defaultTimeout = 120 * time.Second
)

// Config holds configuration for the Whisper transcription provider.
type Config struct {
	// URL is the base URL of the whisper sidecar.
	URL string `json:"url" yaml:"url" mapstructure:"url"`
	// Model is the default whisper model name.
	Model string `json:"model" yaml:"model" mapstructure:"model"`
	// Language is the default language hint. Whisper expects a bare ISO 639
	// code, so BCP-47 tags are reduced to their language part.
	Language string `json:"language,omitempty" yaml:"language" mapstructure:"language"`
	// Timeout bounds a single transcription call.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// Provider implements transcription.Provider using a faster-whisper HTTP sidecar.
type Provider struct {
	cfg    Config
	client *httpclient.Client
}

// NewProvider creates a new Whisper transcription provider.
func NewProvider(cfg Config) *Provider {
	if cfg.URL == "" {
		cfg.URL = defaultURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Provider{
		cfg: cfg,
		client: httpclient.New(httpclient.Config{
			BaseURL: cfg.URL,
			Timeout: cfg.Timeout,
		}),
	}
}

// Factory returns a provider.Factory that creates Whisper providers from a
// generic config map.
func Factory() provider.Factory[transcription.Provider] {
	return func(cfg map[string]any) (transcription.Provider, error) {
		wc := Config{}
		if v, ok := cfg["url"].(string); ok {
			wc.URL = v
		}
		if v, ok := cfg["model"].(string); ok {
			wc.Model = v
		}
		if v, ok := cfg["language"].(string); ok {
			wc.Language = v
		}
		if v, ok := cfg["timeout"].(time.Duration); ok {
			wc.Timeout = v
		}
		return NewProvider(wc), nil
	}
}

// Name returns the provider name.
func (p *Provider) Name() string { return ProviderName }

// IsAvailable checks if the Whisper sidecar is reachable.
func (p *Provider) IsAvailable(ctx context.Context) bool {
	resp, err := p.client.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
	if err != nil {
		return false
	}
	return resp.StatusCode == http.StatusOK
}

// whisperResponse is the sidecar's transcription response.
type whisperResponse struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Segments []struct {
		Text  string  `json:"text"`
		Start float64 `json:"start"`
		End   float64 `json:"end"`
	} `json:"segments"`
}

// Transcribe sends the audio file to the sidecar and returns the transcript.
// An empty transcript yields ErrNoSpeech.
func (p *Provider) Transcribe(ctx context.Context, req transcription.Request) (*transcription.Response, error) {
	audioData, err := os.ReadFile(req.AudioPath)
	if err != nil {
		return nil, fmt.Errorf("read audio file: %w", err)
	}

	model := p.cfg.Model
	if req.Model != "" {
		model = req.Model
	}
	lang := p.cfg.Language
	if req.Language != "" {
		lang = req.Language
	}

	fields := map[string]string{"model": model}
	if lang != "" {
		fields["language"] = languageCode(lang)
	}

	resp, err := p.client.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/transcribe",
		Multipart: &httpclient.MultipartBody{
			Fields: fields,
			Files: []httpclient.FileField{{
				FieldName: "audio",
				FileName:  filepath.Base(req.AudioPath),
				Data:      audioData,
			}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("whisper request: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("whisper returned status %d: %s", resp.StatusCode, resp.Body)
	}

	var result whisperResponse
	if err := resp.DecodeJSON(&result); err != nil {
		return nil, fmt.Errorf("decode whisper response: %w", err)
	}

	text := strings.TrimSpace(result.Text)
	if text == "" {
		return nil, transcription.ErrNoSpeech
	}

	out := &transcription.Response{
		Text:     text,
		Language: result.Language,
	}
	if out.Language == "" {
		out.Language = lang
	}
	if n := len(result.Segments); n > 0 {
		out.Duration = result.Segments[n-1].End
	}
	return out, nil
}

// languageCode reduces a BCP-47 tag like "mr-IN" to the bare language part.
func languageCode(tag string) string {
	if i := strings.IndexByte(tag, '-'); i > 0 {
		return tag[:i]
	}
	return tag
}

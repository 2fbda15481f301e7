// Package google implements transcription.Provider using the Google Speech
// recognition REST API.
package google

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/shrutlekh/shrutlekh/httpclient"
	"github.com/shrutlekh/shrutlekh/provider"
	"github.com/shrutlekh/shrutlekh/transcription"
)

const (
	// ProviderName is the registered name for the Google Speech provider.
	ProviderName = "google"

	defaultEndpoint = "https://speech.googleapis.com"
	defaultTimeout  = 60 * time.Second
)

// Config holds configuration for the Google Speech provider.
type Config struct {
	// APIKey authenticates requests. Required.
	APIKey string `json:"api_key" yaml:"api_key" mapstructure:"api_key"`
	// Endpoint overrides the API base URL, mainly for tests.
	Endpoint string `json:"endpoint" yaml:"endpoint" mapstructure:"endpoint"`
	// Language is the default BCP-47 language tag.
	Language string `json:"language" yaml:"language" mapstructure:"language"`
	// Timeout bounds a single recognition call.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// Provider implements transcription.Provider against the Google Speech REST API.
type Provider struct {
	cfg    Config
	client *httpclient.Client
}

// NewProvider creates a new Google Speech transcription provider.
func NewProvider(cfg Config) *Provider {
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	if cfg.Language == "" {
		cfg.Language = transcription.DefaultLanguage
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Provider{
		cfg: cfg,
		client: httpclient.New(httpclient.Config{
			BaseURL: cfg.Endpoint,
			Timeout: cfg.Timeout,
		}),
	}
}

// Factory returns a provider.Factory that creates Google Speech providers
// from a generic config map.
func Factory() provider.Factory[transcription.Provider] {
	return func(cfg map[string]any) (transcription.Provider, error) {
		gc := Config{}
		if v, ok := cfg["api_key"].(string); ok {
			gc.APIKey = v
		}
		if v, ok := cfg["endpoint"].(string); ok {
			gc.Endpoint = v
		}
		if v, ok := cfg["language"].(string); ok {
			gc.Language = v
		}
		if v, ok := cfg["timeout"].(time.Duration); ok {
			gc.Timeout = v
		}
		return NewProvider(gc), nil
	}
}

// Name returns the provider name.
func (p *Provider) Name() string { return ProviderName }

// IsAvailable reports whether the provider is configured for use.
// The Google API has no unauthenticated health probe, so availability
// means an API key is present.
func (p *Provider) IsAvailable(_ context.Context) bool {
	return p.cfg.APIKey != ""
}

// recognizeRequest is the speech:recognize request body.
type recognizeRequest struct {
	Config recognizeConfig `json:"config"`
	Audio  recognizeAudio  `json:"audio"`
}

type recognizeConfig struct {
	LanguageCode string `json:"languageCode"`
	// Encoding is omitted so the service infers it from the file header,
	// which covers WAV and FLAC uploads.
	EnableAutomaticPunctuation bool `json:"enableAutomaticPunctuation,omitempty"`
}

type recognizeAudio struct {
	Content string `json:"content"`
}

// recognizeResponse is the subset of the speech:recognize response we read.
type recognizeResponse struct {
	Results []struct {
		Alternatives []struct {
			Transcript string  `json:"transcript"`
			Confidence float64 `json:"confidence"`
		} `json:"alternatives"`
	} `json:"results"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Transcribe sends the audio file to the recognize endpoint and returns the
// top transcript. An answer without results means the audio was not
// understood and yields ErrNoSpeech.
func (p *Provider) Transcribe(ctx context.Context, req transcription.Request) (*transcription.Response, error) {
	audioData, err := os.ReadFile(req.AudioPath)
	if err != nil {
		return nil, fmt.Errorf("read audio file: %w", err)
	}

	lang := p.cfg.Language
	if req.Language != "" {
		lang = req.Language
	}

	resp, err := p.client.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/v1/speech:recognize",
		Query:  map[string]string{"key": p.cfg.APIKey},
		JSON: recognizeRequest{
			Config: recognizeConfig{
				LanguageCode:               lang,
				EnableAutomaticPunctuation: true,
			},
			Audio: recognizeAudio{
				Content: base64.StdEncoding.EncodeToString(audioData),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("speech request: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("speech service returned status %d: %s", resp.StatusCode, resp.Body)
	}

	var result recognizeResponse
	if err := resp.DecodeJSON(&result); err != nil {
		return nil, fmt.Errorf("decode speech response: %w", err)
	}
	if result.Error != nil {
		return nil, fmt.Errorf("speech service error %d: %s", result.Error.Code, result.Error.Message)
	}
	if len(result.Results) == 0 || len(result.Results[0].Alternatives) == 0 {
		return nil, transcription.ErrNoSpeech
	}

	top := result.Results[0].Alternatives[0]
	if top.Transcript == "" {
		return nil, transcription.ErrNoSpeech
	}

	return &transcription.Response{
		Text:       top.Transcript,
		Language:   lang,
		Confidence: top.Confidence,
	}, nil
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/shrutlekh/shrutlekh/config"
	"github.com/shrutlekh/shrutlekh/provider"
	"github.com/shrutlekh/shrutlekh/server"
	"github.com/shrutlekh/shrutlekh/storage/local"
	"github.com/shrutlekh/shrutlekh/transcription"
	"github.com/shrutlekh/shrutlekh/transcription/google"
	"github.com/shrutlekh/shrutlekh/transcription/whisper"
	"github.com/shrutlekh/shrutlekh/validation"
)

// AppConfig is the full configuration of the shrutlekh service.
type AppConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Server        server.Config       `yaml:"server" mapstructure:"server"`
	Storage       local.Config        `yaml:"storage" mapstructure:"storage"`
	Transcription TranscriptionConfig `yaml:"transcription" mapstructure:"transcription"`
	Observability ObservabilityConfig `yaml:"observability" mapstructure:"observability"`
}

// TranscriptionConfig selects and configures the recognition backends.
type TranscriptionConfig struct {
	// Default pins a provider by name. Empty means pick the first
	// available one.
	Default string         `yaml:"default" mapstructure:"default" validate:"omitempty,oneof=google whisper"`
	Google  google.Config  `yaml:"google" mapstructure:"google"`
	Whisper whisper.Config `yaml:"whisper" mapstructure:"whisper"`
}

// ObservabilityConfig configures the OTLP exporters.
type ObservabilityConfig struct {
	Enabled    bool          `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string        `yaml:"endpoint" mapstructure:"endpoint"`
	Insecure   bool          `yaml:"insecure" mapstructure:"insecure"`
	SampleRate float64       `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
	Interval   time.Duration `yaml:"interval" mapstructure:"interval"`
}

// ApplyDefaults fills in zero-valued fields across all sections.
func (c *AppConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "shrutlekh"
	}
	if c.Transcription.Google.APIKey == "" {
		c.Transcription.Google.APIKey = os.Getenv("GOOGLE_SPEECH_API_KEY")
	}
	c.ServiceConfig.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Storage.ApplyDefaults()
	if c.Observability.Endpoint == "" {
		c.Observability.Endpoint = "localhost:4318"
	}
	if c.Observability.SampleRate == 0 {
		c.Observability.SampleRate = 1.0
	}
	if c.Observability.Interval == 0 {
		c.Observability.Interval = 15 * time.Second
	}
}

// Validate checks the whole configuration. Field-level rules (provider
// name, sample rate bounds) are declared as validate tags and checked by
// the struct validator.
func (c *AppConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	return validation.Validate(c)
}

// buildProviderManager registers and initializes the configured backends.
func buildProviderManager(cfg TranscriptionConfig) (*provider.Manager[transcription.Provider], error) {
	mgr := transcription.NewManager()

	mgr.Register(google.ProviderName, func(map[string]any) (transcription.Provider, error) {
		return google.NewProvider(cfg.Google), nil
	})
	mgr.Register(whisper.ProviderName, func(map[string]any) (transcription.Provider, error) {
		return whisper.NewProvider(cfg.Whisper), nil
	})

	for _, name := range []string{google.ProviderName, whisper.ProviderName} {
		if err := mgr.Initialize(name, nil); err != nil {
			return nil, fmt.Errorf("initialize %s provider: %w", name, err)
		}
	}

	if cfg.Default != "" {
		mgr.SetDefault(cfg.Default)
	}
	return mgr, nil
}

package main

import (
	"strings"
	"testing"

	"github.com/shrutlekh/shrutlekh/transcription/google"
)

func TestAppConfigDefaults(t *testing.T) {
	cfg := &AppConfig{}
	cfg.ApplyDefaults()

	if cfg.Name != "shrutlekh" {
		t.Errorf("name = %q", cfg.Name)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("server port = %d", cfg.Server.Port)
	}
	if cfg.Storage.BasePath == "" {
		t.Error("storage base path must get a default")
	}
	if cfg.Observability.SampleRate != 1.0 {
		t.Errorf("sample rate = %v", cfg.Observability.SampleRate)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate after defaults: %v", err)
	}
}

func TestAppConfigValidateRejectsUnknownProvider(t *testing.T) {
	cfg := &AppConfig{}
	cfg.ApplyDefaults()
	cfg.Transcription.Default = "siri"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for unknown default provider")
	}
	if !strings.Contains(err.Error(), "default") {
		t.Errorf("error %q does not name the offending field", err)
	}
}

func TestAppConfigValidateRejectsSampleRateOutOfRange(t *testing.T) {
	for _, rate := range []float64{-0.1, 1.5} {
		cfg := &AppConfig{}
		cfg.ApplyDefaults()
		cfg.Observability.SampleRate = rate

		if err := cfg.Validate(); err == nil {
			t.Errorf("sample rate %v accepted, want error", rate)
		}
	}
}

func TestBuildProviderManager(t *testing.T) {
	mgr, err := buildProviderManager(TranscriptionConfig{
		Default: google.ProviderName,
		Google:  google.Config{APIKey: "k"},
	})
	if err != nil {
		t.Fatalf("buildProviderManager: %v", err)
	}

	names := mgr.Initialized()
	if len(names) != 2 {
		t.Fatalf("initialized = %v, want both backends", names)
	}
	if _, ok := mgr.GetByName(google.ProviderName); !ok {
		t.Error("google provider not initialized")
	}
}

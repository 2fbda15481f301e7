package google

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/shrutlekh/shrutlekh/transcription"
)

func writeAudioFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.wav")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTranscribe_Success(t *testing.T) {
	audio := []byte("RIFFfakewav")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/speech:recognize" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("key = %q", got)
		}

		var body recognizeRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body.Config.LanguageCode != "mr-IN" {
			t.Errorf("languageCode = %q", body.Config.LanguageCode)
		}
		decoded, err := base64.StdEncoding.DecodeString(body.Audio.Content)
		if err != nil || string(decoded) != string(audio) {
			t.Errorf("audio content mismatch: %q, %v", decoded, err)
		}

		_, _ = w.Write([]byte(`{
			"results": [{"alternatives": [{"transcript": "नमस्ते", "confidence": 0.93}]}]
		}`))
	}))
	defer srv.Close()

	p := NewProvider(Config{APIKey: "test-key", Endpoint: srv.URL})
	resp, err := p.Transcribe(context.Background(), transcription.Request{
		AudioPath: writeAudioFile(t, audio),
	})
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if resp.Text != "नमस्ते" {
		t.Errorf("text = %q", resp.Text)
	}
	if resp.Confidence != 0.93 {
		t.Errorf("confidence = %v", resp.Confidence)
	}
	if resp.Language != "mr-IN" {
		t.Errorf("language = %q", resp.Language)
	}
}

func TestTranscribe_RequestLanguageOverridesConfig(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body recognizeRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Config.LanguageCode != "hi-IN" {
			t.Errorf("languageCode = %q, want hi-IN", body.Config.LanguageCode)
		}
		_, _ = w.Write([]byte(`{"results": [{"alternatives": [{"transcript": "ठीक"}]}]}`))
	}))
	defer srv.Close()

	p := NewProvider(Config{APIKey: "k", Endpoint: srv.URL, Language: "mr-IN"})
	resp, err := p.Transcribe(context.Background(), transcription.Request{
		AudioPath: writeAudioFile(t, []byte("x")),
		Language:  "hi-IN",
	})
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if resp.Language != "hi-IN" {
		t.Errorf("language = %q", resp.Language)
	}
}

func TestTranscribe_NoSpeech(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	p := NewProvider(Config{APIKey: "k", Endpoint: srv.URL})
	_, err := p.Transcribe(context.Background(), transcription.Request{
		AudioPath: writeAudioFile(t, []byte("silence")),
	})
	if !errors.Is(err, transcription.ErrNoSpeech) {
		t.Fatalf("expected ErrNoSpeech, got %v", err)
	}
}

func TestTranscribe_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": {"code": 403, "message": "key invalid"}}`))
	}))
	defer srv.Close()

	p := NewProvider(Config{APIKey: "bad", Endpoint: srv.URL})
	_, err := p.Transcribe(context.Background(), transcription.Request{
		AudioPath: writeAudioFile(t, []byte("x")),
	})
	if err == nil {
		t.Fatal("expected error for 403 response")
	}
	if errors.Is(err, transcription.ErrNoSpeech) {
		t.Fatal("service failure must not be reported as no-speech")
	}
}

func TestTranscribe_MissingFile(t *testing.T) {
	p := NewProvider(Config{APIKey: "k"})
	_, err := p.Transcribe(context.Background(), transcription.Request{
		AudioPath: "/does/not/exist.wav",
	})
	if err == nil {
		t.Fatal("expected error for missing audio file")
	}
}

func TestIsAvailable(t *testing.T) {
	if NewProvider(Config{}).IsAvailable(context.Background()) {
		t.Error("provider without API key must not be available")
	}
	if !NewProvider(Config{APIKey: "k"}).IsAvailable(context.Background()) {
		t.Error("provider with API key must be available")
	}
}

func TestFactory(t *testing.T) {
	f := Factory()
	p, err := f(map[string]any{"api_key": "k", "language": "hi-IN"})
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	if p.Name() != ProviderName {
		t.Errorf("name = %q", p.Name())
	}
	if !p.IsAvailable(context.Background()) {
		t.Error("expected available provider from factory")
	}
}

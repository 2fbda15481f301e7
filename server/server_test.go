package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/shrutlekh/shrutlekh/component"
	apperrors "github.com/shrutlekh/shrutlekh/errors"
	"github.com/shrutlekh/shrutlekh/logger"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := Config{Host: "127.0.0.1", Port: 0}
	cfg.ApplyDefaults()
	return New(cfg, logger.NewDefault("test"))
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Port != 8080 {
		t.Errorf("port = %d", cfg.Port)
	}
	if cfg.MaxBodySize != "16MB" {
		t.Errorf("max body size = %q", cfg.MaxBodySize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{Port: 70000}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for out-of-range port")
	}
}

func TestDefaultEndpoints(t *testing.T) {
	s := newTestServer(t)
	s.ApplyDefaults("testsvc", func(context.Context) []component.Health {
		return []component.Health{{Name: "storage", Status: component.StatusHealthy}}
	})

	for _, path := range []string{"/health", "/info", "/version"} {
		w := httptest.NewRecorder()
		s.GinEngine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("GET %s = %d", path, w.Code)
		}
	}
}

func TestHealthUnhealthyComponent(t *testing.T) {
	s := newTestServer(t)
	s.ApplyDefaults("testsvc", func(context.Context) []component.Health {
		return []component.Health{{Name: "storage", Status: component.StatusUnhealthy, Message: "down"}}
	})

	w := httptest.NewRecorder()
	s.GinEngine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

func TestRespondWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/app", func(c *gin.Context) {
		RespondWithError(c, apperrors.UnrecognizedSpeech())
	})
	r.GET("/plain", func(c *gin.Context) {
		RespondWithError(c, context.DeadlineExceeded)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/app", nil))
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("app error status = %d, want 422", w.Code)
	}
	var body apperrors.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error.Code != apperrors.ErrCodeUnrecognizedSpeech {
		t.Errorf("code = %q", body.Error.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/plain", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("plain error status = %d, want 500", w.Code)
	}
}

func TestStartStop(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	if err := s.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := s.Stop(ctx); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}

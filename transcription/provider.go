package transcription

import (
	"context"

	"github.com/shrutlekh/shrutlekh/provider"
)

// Provider is the interface that transcription backends must implement.
type Provider interface {
	provider.Provider // embeds Name() and IsAvailable()

	// Transcribe sends audio for recognition and returns the result.
	// Audio that produced no transcript yields ErrNoSpeech.
	Transcribe(ctx context.Context, req Request) (*Response, error)
}

package provider

import "context"

// Provider is the contract a pluggable backend satisfies to participate
// in registration and selection. The transcription package instantiates
// the generics in this package with its own Provider interface.
type Provider interface {
	// Name identifies the backend in configuration and logs.
	Name() string
	// IsAvailable reports whether the backend can serve requests right now.
	IsAvailable(ctx context.Context) bool
}

// Factory builds a backend from its configuration map. Keys are
// backend-specific; decoding them is the factory's responsibility.
type Factory[T Provider] func(cfg map[string]any) (T, error)

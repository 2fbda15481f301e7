// Package transcription defines the speech-to-text provider interface and
// common types for interacting with recognition backends.
//
// It follows the provider pattern with a pluggable registry for
// runtime-selectable backends.
//
// # Backends
//
//   - transcription/google: Google Speech REST recognition
//   - transcription/whisper: local faster-whisper HTTP sidecar
//
// # Usage
//
//	mgr := transcription.NewManager()
//	mgr.Register(google.ProviderName, google.Factory())
//	_ = mgr.Initialize(google.ProviderName, cfg)
//	p, _ := mgr.Get(ctx)
//	result, err := p.Transcribe(ctx, req)
//
// Backends report audio that produced no transcript with ErrNoSpeech so
// callers can distinguish it from transport failures.
package transcription

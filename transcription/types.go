package transcription

import "errors"

// DefaultLanguage is the BCP-47 tag assumed when a request has no language.
const DefaultLanguage = "mr-IN"

// ErrNoSpeech reports that the recognizer answered but could not understand
// the audio. It is a terminal, non-retryable state distinct from transport
// failures.
var ErrNoSpeech = errors.New("transcription: could not understand audio")

// Request holds parameters for a transcription call.
type Request struct {
	// AudioPath is the path to the audio file to transcribe.
	AudioPath string `json:"audio_path"`
	// Language is the expected language of the audio as a BCP-47 tag
	// (e.g. "mr-IN", "hi-IN"). Empty means DefaultLanguage.
	Language string `json:"language,omitempty"`
	// Model is the recognition model to use, if the backend supports one.
	Model string `json:"model,omitempty"`
}

// Response holds the result of a transcription call.
type Response struct {
	// Text is the full transcription text in Unicode.
	Text string `json:"text"`
	// Language is the detected or specified language.
	Language string `json:"language,omitempty"`
	// Confidence is the backend's confidence in Text, 0..1, if reported.
	Confidence float64 `json:"confidence,omitempty"`
	// Duration is the audio duration in seconds, if reported.
	Duration float64 `json:"duration,omitempty"`
}

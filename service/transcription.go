package service

import (
	"context"
	stderrors "errors"
	"io"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/shrutlekh/shrutlekh/errors"
	"github.com/shrutlekh/shrutlekh/krutidev"
	"github.com/shrutlekh/shrutlekh/logger"
	"github.com/shrutlekh/shrutlekh/observability"
	"github.com/shrutlekh/shrutlekh/provider"
	"github.com/shrutlekh/shrutlekh/storage"
	"github.com/shrutlekh/shrutlekh/transcription"
)

// TranscriptionService runs the full upload-to-Krutidev flow.
type TranscriptionService struct {
	store     storage.Storage
	providers *provider.Manager[transcription.Provider]
	encoder   *krutidev.Transliterator
	metrics   *observability.Metrics
	log       *logger.Logger
}

// NewTranscriptionService creates the orchestration service. metrics may be
// nil, in which case metric recording is skipped.
func NewTranscriptionService(
	store storage.Storage,
	providers *provider.Manager[transcription.Provider],
	metrics *observability.Metrics,
	log *logger.Logger,
) *TranscriptionService {
	return &TranscriptionService{
		store:     store,
		providers: providers,
		encoder:   krutidev.New(krutidev.DefaultTable()),
		metrics:   metrics,
		log:       log.WithComponent("transcription-service"),
	}
}

// TranscribeInput describes an uploaded audio file.
type TranscribeInput struct {
	// Filename is the client-provided name, used for storage key derivation.
	Filename string
	// Language is the expected BCP-47 language tag. Empty means the default.
	Language string
	// Audio is the uploaded file content.
	Audio io.Reader
}

// TranscribeResult is the outcome of a successful transcription.
type TranscribeResult struct {
	// UnicodeText is the recognized Devanagari text.
	UnicodeText string `json:"unicode_text"`
	// KrutidevText is the same text in the Kruti Dev glyph encoding.
	KrutidevText string `json:"krutidev_text"`
	// Provider is the name of the recognition backend used.
	Provider string `json:"provider"`
	// Language is the language the audio was recognized in.
	Language string `json:"language"`
	// Confidence is the backend's confidence in the transcript, if reported.
	Confidence float64 `json:"confidence,omitempty"`
}

// Transcribe stores the upload, recognizes speech, and encodes the result.
// The stored file is always removed before returning. Unintelligible audio
// yields an UnrecognizedSpeech error; recognizer transport failures yield
// an ExternalServiceError.
func (s *TranscriptionService) Transcribe(ctx context.Context, in TranscribeInput) (*TranscribeResult, error) {
	ctx, span := observability.StartSpan(ctx, observability.SpanTranscribe)
	defer span.End()

	start := time.Now()
	if s.metrics != nil {
		s.metrics.RecordTranscriptionStart(ctx)
	}

	info, err := s.store.Save(ctx, in.Filename, in.Audio)
	if err != nil {
		s.finish(ctx, "", "store_error", 0, start, err)
		return nil, errors.Internal(err)
	}
	defer func() {
		if derr := s.store.Delete(ctx, info.Key); derr != nil {
			s.log.Warn("failed to remove upload", logger.Fields("key", info.Key, "error", derr.Error()))
		}
	}()

	span.SetAttributes(attribute.Int64(observability.AttrAudioBytes, info.Size))

	p, err := s.providers.Get(ctx)
	if err != nil {
		s.finish(ctx, "", "no_provider", info.Size, start, err)
		return nil, errors.ServiceUnavailable("transcription").WithCause(err)
	}
	span.SetAttributes(attribute.String(observability.AttrProvider, p.Name()))

	recognizeCtx, recognizeSpan := observability.StartSpan(ctx, observability.SpanRecognize)
	resp, err := p.Transcribe(recognizeCtx, transcription.Request{
		AudioPath: info.Path,
		Language:  in.Language,
	})
	if err != nil {
		recognizeSpan.RecordError(err)
	}
	recognizeSpan.End()
	if err != nil {
		if stderrors.Is(err, transcription.ErrNoSpeech) {
			s.finish(ctx, p.Name(), "no_speech", info.Size, start, err)
			return nil, errors.UnrecognizedSpeech()
		}
		s.finish(ctx, p.Name(), "provider_error", info.Size, start, err)
		return nil, errors.ExternalServiceError(p.Name(), err)
	}

	_, encodeSpan := observability.StartSpan(ctx, observability.SpanTransliterate)
	encoded := s.encoder.Transliterate(resp.Text)
	encodeSpan.End()

	span.SetAttributes(
		attribute.String(observability.AttrLanguage, resp.Language),
		attribute.Int(observability.AttrTextLength, len(resp.Text)),
	)
	s.finish(ctx, p.Name(), "ok", info.Size, start, nil)

	s.log.Info("transcription complete", logger.Fields(
		"provider", p.Name(),
		"language", resp.Language,
		"chars", len(resp.Text),
	))

	return &TranscribeResult{
		UnicodeText:  resp.Text,
		KrutidevText: encoded,
		Provider:     p.Name(),
		Language:     resp.Language,
		Confidence:   resp.Confidence,
	}, nil
}

// Romanize converts Devanagari text to its ITRANS romanization. This is the
// explicit fallback for consumers that cannot render the glyph encoding.
func (s *TranscriptionService) Romanize(text string) string {
	return krutidev.ToITRANS(text)
}

// Encode applies the Krutidev glyph encoding to already-recognized text.
func (s *TranscriptionService) Encode(text string) string {
	return s.encoder.Transliterate(text)
}

func (s *TranscriptionService) finish(ctx context.Context, providerName, status string, audioSize int64, start time.Time, err error) {
	if err != nil {
		observability.SetSpanError(ctx, err)
	}
	if s.metrics != nil {
		name := providerName
		if name == "" {
			name = "none"
		}
		s.metrics.RecordTranscription(ctx, name, status, audioSize, time.Since(start))
		if err != nil {
			s.metrics.RecordError(ctx, status, "transcription-service")
		}
	}
}

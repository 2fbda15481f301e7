// Package observability provides OpenTelemetry tracing and metrics for the
// transcription service.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("shrutlekh"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "transcribe")
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("shrutlekh"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("shrutlekh"))
//	metrics.RecordTranscription(ctx, "google", "ok", audioBytes, duration)
package observability

// Package service orchestrates the transcription flow: store the uploaded
// audio, run speech recognition through the selected provider, apply the
// Krutidev glyph encoding, and clean up the upload.
package service

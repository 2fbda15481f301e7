// Package api registers the HTTP endpoints of the transcription service:
// the upload page, the transcribe operation, and the txt/docx downloads.
package api

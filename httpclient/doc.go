// Package httpclient provides a small typed HTTP client with JSON and
// multipart/form-data request bodies, used by transcription backends that
// talk to external speech services.
package httpclient

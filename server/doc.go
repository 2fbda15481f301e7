// Package server provides the HTTP server for the transcription service,
// built on Gin with HTTP/2 cleartext support.
//
// The server follows the component pattern for lifecycle management and
// applies a standard middleware stack: panic recovery, request IDs, CORS,
// a body-size cap matching the audio upload limit, and request logging.
// Built-in endpoints under server/endpoint cover /health, /info, and
// /version.
package server

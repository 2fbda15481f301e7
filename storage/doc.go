// Package storage defines the blob store used for uploaded audio files.
//
// Uploads are short-lived: a file is saved under a unique key, handed to a
// transcription backend, and deleted once the transcript is produced. The
// local filesystem backend in storage/local is the default; the interface
// keeps the service code independent of where the bytes actually live.
package storage

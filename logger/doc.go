// Package logger provides structured logging built on zerolog.
//
// A single global logger is initialized from config at startup; packages
// obtain component-tagged children via Get or WithComponent:
//
//	log := logger.Get("transcription")
//	log.Info("provider initialized", logger.Fields("provider", name))
package logger

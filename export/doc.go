// Package export renders transcription results into downloadable documents.
//
// Two formats are supported: plain UTF-8 text and a minimal Word document
// whose single run is set to the Kruti Dev 010 font, so the legacy glyph
// encoding displays as Devanagari when opened in a word processor.
package export

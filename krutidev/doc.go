// Package krutidev converts Unicode Devanagari text into the Krutidev
// legacy glyph encoding used by older Hindi/Marathi typesetting tools.
//
// Krutidev is a font-level encoding: output code units address glyph
// positions in the Kruti Dev font family, not phonetic code points. The
// mapping table is authoritative data: vowel-sign reordering and ligature
// composition are properties of the table values, never derived by the
// scanner.
//
// The conversion is a pure function over an immutable GlyphMap:
//
//	t := krutidev.New(krutidev.DefaultTable())
//	legacy := t.Transliterate("नमस्ते")
//
// Transliterate is total: characters outside the table pass through
// unchanged, so any well-formed input yields a result. ToITRANS provides a
// separately invokable general-purpose romanization and is not part of the
// primary conversion path.
package krutidev

package krutidev

import "strings"

// Transliterator converts Unicode Devanagari text to the Krutidev legacy
// encoding using an injected glyph table. The zero value is not usable;
// construct with New.
//
// A Transliterator holds no mutable state and is safe for concurrent use.
type Transliterator struct {
	table GlyphMap
}

// New creates a Transliterator backed by the given table. The table must not
// be mutated after it is handed over.
func New(table GlyphMap) *Transliterator {
	return &Transliterator{table: table}
}

// defaultTransliterator serves the package-level Transliterate.
var defaultTransliterator = New(DefaultTable())

// Transliterate converts input using the default table.
func Transliterate(input string) string {
	return defaultTransliterator.Transliterate(input)
}

// Transliterate converts a Unicode string to its Krutidev encoding.
//
// The scan is a single left-to-right pass over code points with one code
// point of lookahead. At each position the two-code-point compound is tried
// first, then the single code point; compounds always win when both match.
// Code points absent from the table pass through unchanged, so the function
// is total and deterministic.
func (t *Transliterator) Transliterate(input string) string {
	if input == "" {
		return ""
	}

	runes := []rune(input)
	var out strings.Builder
	out.Grow(len(input))

	for i := 0; i < len(runes); {
		if i+1 < len(runes) {
			if glyphs, ok := t.table[string(runes[i:i+2])]; ok {
				out.WriteString(glyphs)
				i += 2
				continue
			}
		}
		if glyphs, ok := t.table[string(runes[i])]; ok {
			out.WriteString(glyphs)
			i++
			continue
		}
		out.WriteRune(runes[i])
		i++
	}

	return out.String()
}

package krutidev

import "testing"

func TestToITRANS(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"bare consonant carries inherent a", "क", "ka"},
		{"matra overrides inherent vowel", "की", "kI"},
		{"virama suppresses inherent vowel", "नमस्ते", "namaste"},
		{"independent vowels", "ऐओ", "aio"},
		{"anusvara after inherent vowel", "कं", "kaM"},
		{"vocalic r", "ऋषि", "RRiShi"},
		{"digits and danda", "१। २", "1| 2"},
		{"ascii passthrough", "hello", "hello"},
		{"trailing virama", "क्", "k"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ToITRANS(tc.input); got != tc.want {
				t.Errorf("ToITRANS(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

// The romanization and the glyph encoding are distinct schemes; they agree
// only on text neither maps (plain ASCII). Nothing reconciles their outputs.
func TestToITRANS_DisagreesWithGlyphEncoding(t *testing.T) {
	const input = "नमस्ते"
	if ToITRANS(input) == Transliterate(input) {
		t.Fatal("ITRANS romanization unexpectedly equals Krutidev encoding")
	}
}

package krutidev

import (
	"strings"
	"testing"
)

func TestTransliterate_Words(t *testing.T) {
	tr := New(DefaultTable())

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"namaste", "नमस्ते", "uelrs"},
		{"marathi", "मराठी", "ejkBh"},
		{"single vowel", "अ", "v"},
		{"aa vowel", "आ", "vk"},
		{"consonant with matra", "की", "dh"},
		{"au matra", "कौ", "dkS"},
		{"visarga", "दुःख", "nq%[k"},
		{"space", " ", " "},
		{"newline", "\n", "\n"},
		{"mixed whitespace", "क ख\nग", "d [k\nx"},
		{"danda", "।", "A"},
		{"devanagari digits", "१२३", "123"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tr.Transliterate(tc.input); got != tc.want {
				t.Errorf("Transliterate(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestTransliterate_PassThroughUnmapped(t *testing.T) {
	tr := New(DefaultTable())

	inputs := []string{
		"hello123",
		"ASCII only, with punctuation!",
		"tabs\tand\rreturns",
		"émoji 🙂 and ελληνικά",
	}
	for _, in := range inputs {
		if got := tr.Transliterate(in); got != in {
			t.Errorf("Transliterate(%q) = %q, want input unchanged", in, got)
		}
	}
}

// Compound keys must win over the single-code-point mappings of their parts:
// decomposed ja+nukta maps to "t+", while naive per-character mapping would
// emit the base glyph followed by a passed-through nukta mark.
func TestTransliterate_CompoundPrecedence(t *testing.T) {
	tr := New(DefaultTable())

	const jaNukta = "ज़"
	got := tr.Transliterate(jaNukta)
	if got != "t+" {
		t.Fatalf("Transliterate(ja+nukta) = %q, want %q", got, "t+")
	}

	naive := tr.Transliterate("ज") + tr.Transliterate("़")
	if got == naive {
		t.Fatalf("compound output %q must diverge from naive concatenation %q", got, naive)
	}

	// Precomposed form agrees with the decomposed compound.
	if pre := tr.Transliterate("ज़"); pre != got {
		t.Errorf("precomposed ja-nukta = %q, decomposed = %q, want equal", pre, got)
	}
}

func TestTransliterate_ViramaZeroLength(t *testing.T) {
	tr := New(DefaultTable())

	if got := tr.Transliterate("्"); got != "" {
		t.Fatalf("virama alone = %q, want empty string", got)
	}

	// Consonant + virama + consonant: first glyph concatenated directly to
	// the second, no vowel marker in between.
	got := tr.Transliterate("क्क")
	if got != "dd" {
		t.Fatalf("Transliterate(क्क) = %q, want %q", got, "dd")
	}
	if len([]rune(got)) >= len([]rune("क्क")) {
		t.Errorf("output %q not shorter than naive one-to-one mapping of 3 code points", got)
	}
}

func TestTransliterate_BoundaryWithUnmappedNeighbors(t *testing.T) {
	tr := New(DefaultTable())

	got := tr.Transliterate("42 नमस्ते ok")
	want := "42 uelrs ok"
	if got != want {
		t.Fatalf("Transliterate(boundary case) = %q, want %q", got, want)
	}
}

func TestTransliterate_Deterministic(t *testing.T) {
	tr := New(DefaultTable())
	const input = "श्री गणेशाय नमः १०८"

	first := tr.Transliterate(input)
	for i := 0; i < 100; i++ {
		if got := tr.Transliterate(input); got != first {
			t.Fatalf("call %d returned %q, first call returned %q", i, got, first)
		}
	}
}

// The mapping is one-directional. Feeding legacy output back in is not a
// supported operation: legacy code units are not table keys, so nothing is
// reconstructed, and no round-trip property holds.
func TestTransliterate_NoRoundTrip(t *testing.T) {
	tr := New(DefaultTable())

	legacy := tr.Transliterate("नमस्ते")
	back := tr.Transliterate(legacy)
	if back == "नमस्ते" {
		t.Fatal("reverse mapping is out of scope and must not reconstruct Devanagari")
	}
}

func TestTransliterate_Totality(t *testing.T) {
	tr := New(DefaultTable())

	inputs := []string{
		"",
		"्््",
		"ाीु", // lone vowel signs
		"क्",  // dangling virama at end of input
		"़",   // lone nukta
		strings.Repeat("नमस्ते ", 1000),
		"\x00\x01\x02",
		string([]byte{0xff, 0xfe}), // invalid UTF-8
	}
	for _, in := range inputs {
		// Must return without panicking for every input.
		_ = tr.Transliterate(in)
	}
}

func TestTransliterate_SubstituteTable(t *testing.T) {
	tr := New(GlyphMap{"क": "X", "कख": "Y"})

	if got := tr.Transliterate("कखक"); got != "YX" {
		t.Errorf("substitute table: got %q, want %q", got, "YX")
	}
}

func TestTransliterate_PackageLevelDefault(t *testing.T) {
	if got := Transliterate("मराठी"); got != "ejkBh" {
		t.Errorf("package-level Transliterate = %q, want %q", got, "ejkBh")
	}
}

func TestTransliterate_OutputBounded(t *testing.T) {
	tr := New(DefaultTable())

	widest := 0
	for _, v := range DefaultTable() {
		if n := len(v); n > widest {
			widest = n
		}
	}

	input := strings.Repeat("ख़ौ", 500)
	out := tr.Transliterate(input)
	if len(out) > widest*len([]rune(input)) {
		t.Fatalf("output length %d exceeds bound %d", len(out), widest*len([]rune(input)))
	}
}

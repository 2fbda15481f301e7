package krutidev

// GlyphMap maps a Unicode grapheme unit to its Krutidev output code units.
// A key is either a single Devanagari code point or a fixed two-code-point
// compound; longer sequences are not supported. A mapped value may be empty
// (the virama suppresses the inherent vowel and emits nothing).
//
// A GlyphMap is built once and never mutated afterwards, so it is safe for
// concurrent readers.
type GlyphMap map[string]string

// MaxKeyLen is the longest supported key length in code points.
const MaxKeyLen = 2

// DefaultTable returns the standard Unicode-to-Krutidev glyph table.
//
// Values address glyph positions in the Kruti Dev 010 font. Several entries
// encode visual reordering (e.g. the short-i sign "ि" maps to "f", which
// renders before the consonant glyph in the legacy font). The scanner emits
// values verbatim and relies on the table for visual order.
func DefaultTable() GlyphMap {
	return GlyphMap{
		// Independent vowels.
		"अ": "v", "आ": "vk", "इ": "b", "ई": "bZ", "उ": "m", "ऊ": "Å",
		"ऋ": "_", "ए": ",", "ऐ": ",s", "ओ": "vks", "औ": "vkS",

		// Consonants.
		"क": "d", "ख": "[k", "ग": "x", "घ": "?k", "ङ": "³",
		"च": "p", "छ": "N", "ज": "t", "झ": ">", "ञ": "¥",
		"ट": "V", "ठ": "B", "ड": "M", "ढ": "<", "ण": ".k",
		"त": "r", "थ": "Fk", "द": "n", "ध": "/k", "न": "u",
		"प": "i", "फ": "Q", "ब": "c", "भ": "Hk", "म": "e",
		"य": ";", "र": "j", "ल": "y", "व": "o", "श": "'k",
		"ष": "\"k", "स": "l", "ह": "g",

		// Dependent vowel signs and combining marks.
		"ा": "k", "ि": "f", "ी": "h", "ु": "q", "ू": "w", "े": "s",
		"ै": "S", "ो": "ks", "ौ": "kS", "ं": "M+", "ः": "%", "ँ": "~",

		// Virama suppresses the inherent vowel: a valid zero-length
		// substitution, not an unmapped character.
		"्": "",

		// Layout-significant whitespace maps to itself. The pass-through
		// rule would preserve these anyway; explicit entries keep the
		// contract testable.
		" ": " ", "\n": "\n",

		// Nukta consonants, both the precomposed code points and the
		// decomposed consonant+nukta pairs. The decomposed pairs are the
		// reason compound lookup must win over single lookup: naive
		// per-character mapping would emit the base glyph followed by a
		// passed-through nukta mark.
		"\u0958": "d+", "\u0959": "[+k", "\u095a": "x+", "\u095b": "t+",
		"\u095c": "M+", "\u095d": "<+", "\u095e": "Q+", "\u095f": ";+",
		"क़": "d+", "ख़": "[+k",
		"ग़": "x+", "ज़": "t+",
		"ड़": "M+", "ढ़": "<+",
		"फ़": "Q+", "य़": ";+",

		// Punctuation and digits kept on their Kruti Dev 010 positions.
		"।": "A", "॥": "AA",
		"०": "0", "१": "1", "२": "2", "३": "3", "४": "4",
		"५": "5", "६": "6", "७": "7", "८": "8", "९": "9",
	}
}

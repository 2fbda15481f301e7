package krutidev

import "strings"

// ITRANS romanization tables. Unlike the Krutidev glyph table these are
// phonetic: a consonant carries an inherent "a" unless a dependent vowel
// sign or virama follows, so romanization needs one code point of lookahead
// with different semantics than the glyph scan.

var itransConsonants = map[rune]string{
	'क': "k", 'ख': "kh", 'ग': "g", 'घ': "gh", 'ङ': "~N",
	'च': "ch", 'छ': "Ch", 'ज': "j", 'झ': "jh", 'ञ': "~n",
	'ट': "T", 'ठ': "Th", 'ड': "D", 'ढ': "Dh", 'ण': "N",
	'त': "t", 'थ': "th", 'द': "d", 'ध': "dh", 'न': "n",
	'प': "p", 'फ': "ph", 'ब': "b", 'भ': "bh", 'म': "m",
	'य': "y", 'र': "r", 'ल': "l", 'व': "v",
	'श': "sh", 'ष': "Sh", 'स': "s", 'ह': "h", 'ळ': "L",
	'क़': "q", 'ख़': "K", 'ग़': "G", 'ज़': "z",
	'ड़': ".D", 'ढ़': ".Dh", 'फ़': "f",
}

// nuktaForms folds a base consonant followed by the combining nukta
// U+093C into its precomposed code point before consonant lookup.
var nuktaForms = map[rune]rune{
	'क': 'क़', 'ख': 'ख़', 'ग': 'ग़', 'ज': 'ज़',
	'ड': 'ड़', 'ढ': 'ढ़', 'फ': 'फ़',
}

var itransVowels = map[rune]string{
	'अ': "a", 'आ': "A", 'इ': "i", 'ई': "I", 'उ': "u", 'ऊ': "U",
	'ऋ': "RRi", 'ऌ': "LLi", 'ए': "e", 'ऐ': "ai", 'ओ': "o", 'औ': "au",
}

var itransMatras = map[rune]string{
	'ा': "A", 'ि': "i", 'ी': "I", 'ु': "u", 'ू': "U",
	'ृ': "R^i", 'ॢ': "L^i", 'े': "e", 'ै': "ai", 'ो': "o", 'ौ': "au",
}

var itransMarks = map[rune]string{
	'ं': "M", 'ः': "H", 'ँ': ".N", 'ऽ': ".a",
	'।': "|", '॥': "||", 'ॐ': "OM",
	'०': "0", '१': "1", '२': "2", '३': "3", '४': "4",
	'५': "5", '६': "6", '७': "7", '८': "8", '९': "9",
}

const (
	virama = '्'
	nukta  = '़'
)

// ToITRANS romanizes Devanagari text using the ITRANS scheme. It is the
// explicit fallback transliteration: a general-purpose phonetic rendering,
// not the Krutidev glyph encoding, and the two deliberately disagree for
// any Devanagari input. Callers invoke it only when they want romanized
// output; the primary conversion path never falls back to it.
//
// Like Transliterate it is total: unrecognized characters pass through.
func ToITRANS(input string) string {
	runes := []rune(input)
	var out strings.Builder
	out.Grow(len(input))

	for i := 0; i < len(runes); {
		r := runes[i]

		width := 1
		if i+1 < len(runes) && runes[i+1] == nukta {
			if folded, ok := nuktaForms[r]; ok {
				r = folded
				width = 2
			}
		}

		if base, ok := itransConsonants[r]; ok {
			out.WriteString(base)
			i += width
			if i < len(runes) {
				if runes[i] == virama {
					// Inherent vowel suppressed.
					i++
					continue
				}
				if vowel, ok := itransMatras[runes[i]]; ok {
					out.WriteString(vowel)
					i++
					continue
				}
			}
			out.WriteString("a")
			continue
		}

		if vowel, ok := itransVowels[r]; ok {
			out.WriteString(vowel)
			i++
			continue
		}
		if mark, ok := itransMarks[r]; ok {
			out.WriteString(mark)
			i++
			continue
		}

		out.WriteRune(r)
		i++
	}

	return out.String()
}

package format

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Cyrillic-to-Latin table following the common GOST-style transliteration.
var translit = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "yo",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "shch",
	'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
}

// foldDiacritics strips combining marks so accented Latin letters ("è", "ü")
// reduce to their base form. It must run after transliteration: NFD would
// otherwise split "ё" and "й" into base letter + mark and lose the
// distinction.
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify derives a URL-safe identifier from a product name: Cyrillic is
// transliterated, diacritics are folded, and anything non-alphanumeric
// collapses into single dashes.
func Slugify(name string) string {
	var tr strings.Builder
	for _, r := range strings.ToLower(name) {
		if t, ok := translit[r]; ok {
			tr.WriteString(t)
		} else {
			tr.WriteRune(r)
		}
	}
	s := tr.String()
	if folded, _, err := transform.String(foldDiacritics, s); err == nil {
		s = folded
	}

	var b strings.Builder
	lastDash := true // suppress a leading dash
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

package slugify

import (
	"unicode"

	"github.com/rainycape/unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalize maps text onto the slug's target alphabet. With allowUnicode the
// text is only NFKC-normalized and letters of any script survive. Otherwise
// the text is decomposed to NFKD, combining marks are stripped ("é" becomes
// "e") and the remaining non-ASCII runes are transliterated, falling back to
// dropping runes nothing can express in ASCII.
func normalize(text string, allowUnicode bool) string {
	if allowUnicode {
		return norm.NFKC.String(text)
	}

	return unidecode.Unidecode(asciiFold(text))
}

func asciiFold(text string) string {
	// Transformers carry state between calls, so the chain is built per
	// call instead of being shared.
	folded, _, err := transform.String(
		transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mark))),
		text,
	)
	if err != nil {
		// NFKD and runes.Remove do not fail on UTF-8 input; transliterate
		// the untouched text instead.
		return text
	}

	return folded
}

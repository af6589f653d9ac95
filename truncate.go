package slugify

import (
	"strings"
	"unicode/utf8"
)

// truncate enforces maxLength, counted in codepoints, on an assembled slug.
//
// Without wordBoundary the slug is cut at exactly maxLength codepoints and a
// trailing partial separator is stripped. With wordBoundary whole tokens are
// accumulated strictly left to right until the next one would no longer fit;
// a first token longer than the limit is cut rather than returning an empty
// slug. The result never ends with a separator.
func truncate(slug string, maxLength int, wordBoundary bool, separator string) string {
	if utf8.RuneCountInString(slug) <= maxLength {
		return slug
	}

	if !wordBoundary {
		return strings.TrimRight(cutRunes(slug, maxLength), separator)
	}

	tokens := strings.Split(slug, separator)
	sepLen := utf8.RuneCountInString(separator)
	length, kept := 0, 0
	for _, token := range tokens {
		next := length + utf8.RuneCountInString(token)
		if kept > 0 {
			next += sepLen
		}
		if next > maxLength {
			break
		}
		length = next
		kept++
	}
	if kept == 0 {
		return strings.TrimRight(cutRunes(tokens[0], maxLength), separator)
	}

	return strings.Join(tokens[:kept], separator)
}

func cutRunes(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}

	return string(rs[:n])
}

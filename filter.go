package slugify

import (
	"strings"
	"unicode"
)

// stripQuotes deletes apostrophes so contractions collapse into a single
// token: "C'est" becomes "Cest", not "C-est". Transliteration has already
// folded typographic quotes to the ASCII apostrophe at this point.
func stripQuotes(text string) string {
	if !strings.ContainsRune(text, '\'') {
		return text
	}

	return strings.Map(func(r rune) rune {
		if r == '\'' {
			return -1
		}
		return r
	}, text)
}

// stripNumberGrouping removes commas acting as thousands separators, so
// "1,000" stays one token instead of splitting into "1" and "000". Commas in
// any other position are left for the character filter.
func stripNumberGrouping(text string) string {
	if !strings.ContainsRune(text, ',') {
		return text
	}

	rs := []rune(text)
	var sb strings.Builder
	sb.Grow(len(text))
	for i, r := range rs {
		if r == ',' && i > 0 && i+1 < len(rs) && isASCIIDigit(rs[i-1]) && isASCIIDigit(rs[i+1]) {
			continue
		}
		sb.WriteRune(r)
	}

	return sb.String()
}

// replaceDisallowed substitutes every run of disallowed characters with a
// single separator occurrence. A caller-supplied pattern decides what is
// disallowed when present; otherwise everything that is not a letter or
// digit of the target alphabet is.
func (s *Slugifier) replaceDisallowed(text string) string {
	if s.pattern != nil {
		return s.pattern.ReplaceAllString(text, s.opts.Separator)
	}

	allowed := isASCIIAlphanumeric
	if s.opts.AllowUnicode {
		allowed = isUnicodeAlphanumeric
	}

	var sb strings.Builder
	sb.Grow(len(text))
	pending := false
	for _, r := range text {
		if !allowed(r) {
			pending = true
			continue
		}
		if pending {
			sb.WriteString(s.opts.Separator)
			pending = false
		}
		sb.WriteRune(r)
	}
	if pending {
		sb.WriteString(s.opts.Separator)
	}

	return sb.String()
}

func isASCIIAlphanumeric(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || isASCIIDigit(r)
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isUnicodeAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// tokenize splits the filtered text on the separator, discarding the empty
// tokens consecutive separators produce.
func tokenize(text, separator string) []string {
	parts := strings.Split(text, separator)
	tokens := parts[:0]
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}

	return tokens
}

// dropStopwords removes tokens matching a stopword. Matching is exact but
// case-insensitive; substring matches do not count.
func dropStopwords(tokens, stopwords []string) []string {
	if len(stopwords) == 0 {
		return tokens
	}

	kept := tokens[:0]
	for _, token := range tokens {
		if !isStopword(token, stopwords) {
			kept = append(kept, token)
		}
	}

	return kept
}

func isStopword(token string, stopwords []string) bool {
	for _, w := range stopwords {
		if strings.EqualFold(token, w) {
			return true
		}
	}

	return false
}

// assemble joins the surviving tokens. The fold happens on the joined string
// so a separator literal supplied in upper case is normalized too.
func assemble(tokens []string, separator string, lowercase bool) string {
	slug := strings.Join(tokens, separator)
	if lowercase {
		slug = strings.ToLower(slug)
	}

	return slug
}

package slugify

import (
	"html"
	"strconv"
	"strings"
	"unicode/utf8"
)

// maxReferenceLength bounds the search for the closing semicolon. The
// longest named reference in the WHATWG table is 31 characters.
const maxReferenceLength = 48

// decodeEntities decodes HTML character references in a single left-to-right
// scan. Decoded output is appended to the result and never rescanned, so
// "&amp;amp;" decodes to "&amp;" rather than "&". Malformed or disabled
// references are kept as literal text.
func decodeEntities(text string, named, decimal, hexadecimal bool) string {
	if !named && !decimal && !hexadecimal {
		return text
	}
	if !strings.ContainsRune(text, '&') {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); {
		if text[i] != '&' {
			j := strings.IndexByte(text[i:], '&')
			if j < 0 {
				sb.WriteString(text[i:])
				break
			}
			sb.WriteString(text[i : i+j])
			i += j
			continue
		}

		ref, decoded, ok := decodeReference(text[i:], named, decimal, hexadecimal)
		if !ok {
			sb.WriteByte('&')
			i++
			continue
		}
		sb.WriteString(decoded)
		i += len(ref)
	}

	return sb.String()
}

// decodeReference decodes the character reference at the start of s and
// returns the consumed text along with its decoded form.
func decodeReference(s string, named, decimal, hexadecimal bool) (ref, decoded string, ok bool) {
	end := strings.IndexByte(s, ';')
	if end < 2 || end > maxReferenceLength {
		return "", "", false
	}
	ref = s[:end+1]
	body := s[1:end]

	if body[0] == '#' {
		r, numOK := decodeNumeric(body[1:], decimal, hexadecimal)
		if !numOK {
			return "", "", false
		}
		return ref, string(r), true
	}

	if !named || !isReferenceName(body) {
		return "", "", false
	}
	decoded = html.UnescapeString(ref)
	// A known name decodes to at most two codepoints. Anything longer means
	// the name was unknown, or only a legacy prefix of it decoded.
	if decoded == ref || utf8.RuneCountInString(decoded) > 2 {
		return "", "", false
	}

	return ref, decoded, true
}

func decodeNumeric(body string, decimal, hexadecimal bool) (rune, bool) {
	if body == "" {
		return 0, false
	}

	var n int64
	var err error
	if body[0] == 'x' || body[0] == 'X' {
		if !hexadecimal {
			return 0, false
		}
		n, err = strconv.ParseInt(body[1:], 16, 32)
	} else {
		if !decimal {
			return 0, false
		}
		n, err = strconv.ParseInt(body, 10, 32)
	}
	if err != nil || !utf8.ValidRune(rune(n)) {
		return 0, false
	}

	return rune(n), true
}

func isReferenceName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		alnum := c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
		if !alnum {
			return false
		}
	}

	return true
}

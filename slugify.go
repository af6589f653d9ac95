// Package slugify converts arbitrary, possibly non-ASCII text into compact,
// URL-safe slugs.
//
// The conversion is a fixed pipeline: literal replacements, HTML character
// reference decoding, transliteration (or NFKC normalization when unicode
// output is allowed), character filtering, tokenization with stopword
// removal, assembly and length-bounded truncation. Every stage is pure, so a
// Slugifier is safe for concurrent use.
package slugify

import (
	"regexp"
	"strings"
)

// Slugifier turns text into slugs according to a fixed Options value.
type Slugifier struct {
	opts    Options
	pattern *regexp.Regexp
}

// NewSlugifier validates opts and returns a ready-to-use Slugifier.
func NewSlugifier(opts Options) (*Slugifier, error) {
	err := opts.Validate()
	if err != nil {
		return nil, err
	}

	s := &Slugifier{opts: opts}
	if opts.Pattern != "" {
		// Validate compiled the pattern already.
		s.pattern = regexp.MustCompile(opts.Pattern)
	}

	return s, nil
}

// Slugify converts text into a slug. Input that contains no usable
// characters yields an empty string.
func (s *Slugifier) Slugify(text string) string {
	opts := s.opts

	text = applyReplacements(text, opts.Replacements)
	text = decodeEntities(text, opts.Entities, opts.Decimal, opts.Hexadecimal)
	if opts.TransliterateIcons {
		text = transliterateIcons(text)
	}
	text = normalize(text, opts.AllowUnicode)
	text = stripQuotes(text)
	text = stripNumberGrouping(text)
	if opts.Lowercase {
		// Fold before filtering so a caller-supplied pattern written in
		// lower case matches, then again after assembly to normalize any
		// separator literal.
		text = strings.ToLower(text)
	}
	text = s.replaceDisallowed(text)

	tokens := dropStopwords(tokenize(text, opts.Separator), opts.Stopwords)
	slug := assemble(tokens, opts.Separator, opts.Lowercase)

	if opts.MaxLength > 0 {
		sep := opts.Separator
		if opts.Lowercase {
			sep = strings.ToLower(sep)
		}
		slug = truncate(slug, opts.MaxLength, opts.WordBoundary, sep)
	}

	return slug
}

// Options returns a copy of the slugifier's configuration.
func (s *Slugifier) Options() Options {
	return s.opts
}

// Slugify converts text using a one-off Slugifier built from opts.
func Slugify(text string, opts Options) (string, error) {
	s, err := NewSlugifier(opts)
	if err != nil {
		return "", err
	}

	return s.Slugify(text), nil
}

// Make converts text using DefaultOptions.
func Make(text string) string {
	slug, err := Slugify(text, DefaultOptions())
	if err != nil {
		// DefaultOptions always validates.
		panic(err)
	}

	return slug
}

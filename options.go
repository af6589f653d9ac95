package slugify

import (
	"fmt"
	"regexp"
)

// DefaultSeparator joins slug tokens unless a different separator is configured.
const DefaultSeparator = "-"

// ErrBadOptions indicates an invalid option value. It is returned before any
// text is processed; a slugifier never produces partial output for bad options.
var ErrBadOptions = fmt.Errorf("bad options")

// Replacement substitutes every literal occurrence of From with To.
type Replacement struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Options configures a Slugifier. The zero value is not useful, use
// DefaultOptions as a starting point. The JSON field names match the
// persisted golden-file format.
type Options struct {
	// Entities enables decoding of named HTML character references (&amp;).
	Entities bool `json:"entities"`
	// Decimal enables decoding of decimal character references (&#381;).
	Decimal bool `json:"decimal"`
	// Hexadecimal enables decoding of hexadecimal character references (&#x17D;).
	Hexadecimal bool `json:"hexadecimal"`
	// MaxLength limits the slug length in codepoints, zero means unlimited.
	MaxLength int `json:"max_length"`
	// WordBoundary makes truncation keep whole tokens instead of cutting
	// mid-word.
	WordBoundary bool `json:"word_boundary"`
	// Separator joins the slug tokens.
	Separator string `json:"separator"`
	// SaveOrder is accepted for compatibility with older implementations
	// that reordered tokens during word-boundary truncation. Truncation is
	// always strictly left-to-right, so the flag does not change the output.
	SaveOrder bool `json:"save_order"`
	// Stopwords are dropped from the token sequence. Matching is exact but
	// case-insensitive.
	Stopwords []string `json:"stopwords,omitempty"`
	// Pattern overrides the default disallowed-characters filter with a
	// regular expression; every match is replaced by the separator.
	Pattern string `json:"regex_pattern,omitempty"`
	// Lowercase folds the slug to lower case.
	Lowercase bool `json:"lowercase"`
	// Replacements are applied to the input first, in order, each rule
	// rescanning the output of the previous one.
	Replacements []Replacement `json:"replacements,omitempty"`
	// AllowUnicode keeps letters of any script, NFKC-normalized, instead of
	// folding them to ASCII.
	AllowUnicode bool `json:"allow_unicode"`
	// TransliterateIcons replaces known pictographs with their word form
	// ("♥" becomes "heart") instead of dropping them.
	TransliterateIcons bool `json:"transliterate_icons"`
}

// DefaultOptions returns the documented default configuration: entity
// decoding on, lowercasing on, "-" separator, no length limit.
func DefaultOptions() Options {
	return Options{
		Entities:    true,
		Decimal:     true,
		Hexadecimal: true,
		Separator:   DefaultSeparator,
		Lowercase:   true,
	}
}

// Validate reports the first invalid option value, wrapped in ErrBadOptions.
func (o Options) Validate() error {
	if o.MaxLength < 0 {
		return fmt.Errorf("%w: max_length must not be negative, got %d", ErrBadOptions, o.MaxLength)
	}
	if o.Separator == "" {
		return fmt.Errorf("%w: separator must not be empty", ErrBadOptions)
	}
	for i, r := range o.Replacements {
		if r.From == "" {
			return fmt.Errorf("%w: replacement %d has an empty search string", ErrBadOptions, i)
		}
	}
	if o.Pattern != "" {
		_, err := regexp.Compile(o.Pattern)
		if err != nil {
			return fmt.Errorf("%w: regex_pattern does not compile: %s", ErrBadOptions, err.Error())
		}
	}
	return nil
}

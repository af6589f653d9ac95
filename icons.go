package slugify

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/yuin/goldmark-emoji/definition"
)

// iconShortNames selects the GitHub emoji shortcodes that participate in
// icon transliteration. The word form is the shortcode with underscores
// replaced by spaces, so "musical_note" contributes two tokens.
var iconShortNames = []string{
	"airplane", "alarm_clock", "anchor", "bell", "bomb", "books", "bug",
	"bulb", "cake", "camera", "cloud", "coffee", "crown", "email", "fire",
	"gift", "guitar", "heart", "hourglass", "house", "key", "lock", "moon",
	"musical_note", "pencil2", "pizza", "rocket", "scissors", "smile",
	"snowflake", "sparkles", "star", "sunny", "tada", "thumbsup",
	"umbrella", "unicorn", "warning", "wrench", "zap",
}

// iconExtras covers symbols outside the GitHub emoji set and overrides the
// word form for a few codepoints whose shortcode reads badly in a slug.
var iconExtras = map[string]string{
	"♥": "heart",
	"♡": "heart",
	"❤": "heart",
	"♦": "diamond",
	"♣": "club",
	"♠": "spade",
	"★": "star",
	"☆": "star",
	"☀": "sun",
	"☽": "moon",
	"✓": "check",
	"✔": "check",
	"✗": "cross",
	"✘": "cross",
	"∞": "infinity",
	"☮": "peace",
	"☯": "yin yang",
}

var (
	iconOnce     sync.Once
	iconTable    map[string]string
	iconMaxRunes int
)

// icons returns the pictograph-to-word table and the rune length of its
// longest key. The table is built once and never mutated afterwards.
func icons() (map[string]string, int) {
	iconOnce.Do(func() {
		iconTable = make(map[string]string, 2*len(iconShortNames)+len(iconExtras))
		github := definition.Github()
		for _, name := range iconShortNames {
			em, ok := github.Get(name)
			if !ok {
				continue
			}
			word := strings.ReplaceAll(name, "_", " ")
			icon := string(em.Unicode)
			iconTable[icon] = word
			if bare := stripVariationSelectors(icon); bare != "" {
				iconTable[bare] = word
			}
		}
		for icon, word := range iconExtras {
			iconTable[icon] = word
		}
		for icon := range iconTable {
			if n := utf8.RuneCountInString(icon); n > iconMaxRunes {
				iconMaxRunes = n
			}
		}
	})

	return iconTable, iconMaxRunes
}

func stripVariationSelectors(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 0xFE00 && r <= 0xFE0F {
			return -1
		}
		return r
	}, s)
}

// transliterateIcons replaces known pictographs with their word form, padded
// with spaces so the words become separate tokens during assembly. Longest
// sequences match first; unknown runes pass through untouched.
func transliterateIcons(text string) string {
	table, maxRunes := icons()

	rs := []rune(text)
	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(rs); {
		length := maxRunes
		if rest := len(rs) - i; rest < length {
			length = rest
		}

		matched := false
		for n := length; n > 0; n-- {
			candidate := string(rs[i : i+n])
			word, ok := table[candidate]
			if !ok {
				if bare := stripVariationSelectors(candidate); bare != "" && bare != candidate {
					word, ok = table[bare]
				}
			}
			if ok {
				sb.WriteByte(' ')
				sb.WriteString(word)
				sb.WriteByte(' ')
				i += n
				matched = true
				break
			}
		}
		if !matched {
			sb.WriteRune(rs[i])
			i++
		}
	}

	return sb.String()
}

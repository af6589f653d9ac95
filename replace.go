package slugify

import "strings"

// applyReplacements substitutes every rule in order. Each rule rescans the
// output of the previous one, so rules must not be reordered and
// strings.NewReplacer (single pass, leftmost match) is not a substitute.
func applyReplacements(text string, replacements []Replacement) string {
	for _, r := range replacements {
		text = strings.ReplaceAll(text, r.From, r.To)
	}

	return text
}

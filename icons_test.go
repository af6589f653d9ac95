package slugify

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIconTable(t *testing.T) {
	table, maxRunes := icons()
	require.NotEmpty(t, table)
	require.GreaterOrEqual(t, maxRunes, 1)

	require.Equal(t, "heart", table["♥"])
	require.Equal(t, "rocket", table["🚀"])
	require.Equal(t, "unicorn", table["🦄"])
}

func TestTransliterateIcons(t *testing.T) {
	tCases := []struct {
		name string
		text string
		want string
	}{
		{"single", "🚀", " rocket "},
		{"mixed", "I ♥ Go", "I  heart  Go"},
		{"variation-selector", "❤️", " heart "},
		{"multi-word", "🎵", " musical note "},
		{"unknown-passes-through", "plain text", "plain text"},
	}

	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			require.Equal(t, tCase.want, transliterateIcons(tCase.text))
		})
	}
}

package slugify

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripNumberGrouping(t *testing.T) {
	tCases := []struct {
		text     string
		stripped string
	}{
		{"1,234", "1234"},
		{"1,234,567", "1234567"},
		{"1,234 apples", "1234 apples"},
		{"apples, 1,234", "apples, 1234"},
		{"no commas here", "no commas here"},
		{",leading comma", ",leading comma"},
		{"trailing comma,", "trailing comma,"},
		{"multiple,,commas", "multiple,,commas"},
	}

	for _, tCase := range tCases {
		require.Equal(t, tCase.stripped, stripNumberGrouping(tCase.text))
	}
}

func TestStripQuotes(t *testing.T) {
	require.Equal(t, "Cest lete", stripQuotes("C'est l'ete"))
	require.Equal(t, "abcd", stripQuotes("''a'''b''c''d'"))
	require.Equal(t, "untouched", stripQuotes("untouched"))
}

func TestTokenize(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, tokenize("a-b--c-", "-"))
	require.Equal(t, []string{"x"}, tokenize("__x__", "__"))
	require.Empty(t, tokenize("---", "-"))
	require.Empty(t, tokenize("", "-"))
}

func TestDropStopwords(t *testing.T) {
	tokens := []string{"The", "quick", "the", "fox"}
	require.Equal(t, []string{"quick", "fox"}, dropStopwords(tokens, []string{"the"}))

	tokens = []string{"keep", "everything"}
	require.Equal(t, tokens, dropStopwords(tokens, nil))
}

func TestReplaceDisallowed(t *testing.T) {
	s, err := NewSlugifier(DefaultOptions())
	require.NoError(t, err)

	// Runs of disallowed characters collapse into one separator occurrence.
	require.Equal(t, "a-b-c-", s.replaceDisallowed("a -- b ## c !!"))
	require.Equal(t, "-x-", s.replaceDisallowed("  x  "))
}

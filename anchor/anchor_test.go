package anchor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/klingtnet/slugify"
)

const document = `# Érase una vez

Some introduction.

## Usage

How to use it.

### Don't Panic!

## Usage

Repeated section name.

Not a heading: just a paragraph.
`

func TestHeadings(t *testing.T) {
	slugifier, err := slugify.NewSlugifier(slugify.DefaultOptions())
	require.NoError(t, err)

	headings, err := Headings([]byte(document), slugifier)
	require.NoError(t, err)

	require.Equal(t, []Heading{
		{Level: 1, Text: "Érase una vez", Anchor: "erase-una-vez"},
		{Level: 2, Text: "Usage", Anchor: "usage"},
		{Level: 3, Text: "Don't Panic!", Anchor: "dont-panic"},
		{Level: 2, Text: "Usage", Anchor: "usage-1"},
	}, headings)
}

func TestHeadingsEmptyDocument(t *testing.T) {
	slugifier, err := slugify.NewSlugifier(slugify.DefaultOptions())
	require.NoError(t, err)

	headings, err := Headings(nil, slugifier)
	require.NoError(t, err)
	require.Empty(t, headings)
}

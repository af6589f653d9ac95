// Package anchor derives slug anchors for markdown headings, e.g. to build
// a table of contents with stable fragment links.
package anchor

import (
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/klingtnet/slugify"
)

// Heading is a markdown heading together with its slug anchor.
type Heading struct {
	Level  int
	Text   string
	Anchor string
}

// Headings parses source as markdown and returns one entry per heading, in
// document order. Anchors are produced by the given slugifier and
// deduplicated by suffixing a counter, so a second "Usage" heading becomes
// "usage-1".
func Headings(source []byte, slugifier *slugify.Slugifier) ([]Heading, error) {
	document := goldmark.New().Parser().Parse(text.NewReader(source))

	var headings []Heading
	seen := map[string]int{}
	err := ast.Walk(document, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		headingText := string(n.Text(source))
		anchor := slugifier.Slugify(headingText)
		count, duplicate := seen[anchor]
		seen[anchor] = count + 1
		if duplicate {
			anchor = fmt.Sprintf("%s-%d", anchor, count)
		}

		headings = append(headings, Heading{
			Level:  heading.Level,
			Text:   headingText,
			Anchor: anchor,
		})

		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, err
	}

	return headings, nil
}

// Package markdown wraps Goldmark for the small set of transforms the
// generator needs: rendering parameter/topic markdown to HTML and pulling
// the first heading out of a topic body.
package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Transform converts a markdown source string into rendered output.
// Theme parameter validation applies this to Markdown-typed values so the
// stored value is ready to emit without re-transformation.
type Transform func(source string) (string, error)

// Render converts CommonMark source to HTML.
func Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FirstHeading returns the text of the first heading in body, or "" when
// the document has none. Used as the topic title fallback when frontmatter
// declares no title.
func FirstHeading(body []byte) string {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))

	var title string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if h, ok := n.(*gmast.Heading); ok {
			var b strings.Builder
			for c := h.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*gmast.Text); ok {
					b.Write(t.Segment.Value(body))
				}
			}
			title = strings.TrimSpace(b.String())
			return gmast.WalkStop, nil
		}
		return gmast.WalkContinue, nil
	})
	return title
}

package theme

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/net/html"
)

// TemplateMeta contains metadata extracted from apidocs:* meta tags inside a
// template's HTML. All fields are optional; themes without meta tags simply
// report empty metadata.
type TemplateMeta struct {
	Name        string
	Kind        string // page kind the template renders: namespace, type, member, topic, index
	Description string
}

// ParseTemplateMeta extracts template metadata from a template document.
func ParseTemplateMeta(r io.Reader) (TemplateMeta, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return TemplateMeta{}, fmt.Errorf("parse template HTML: %w", err)
	}

	meta := make(map[string]string)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "meta" {
			if prop := getAttr(n, "property"); prop != "" {
				meta[prop] = getAttr(n, "content")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return TemplateMeta{
		Name:        meta["apidocs:template.name"],
		Kind:        meta["apidocs:template.kind"],
		Description: meta["apidocs:template.description"],
	}, nil
}

// InspectTemplates parses every resolved template and returns its metadata
// keyed by the template's canonical name.
func (t *Theme) InspectTemplates() (map[string]TemplateMeta, error) {
	out := make(map[string]TemplateMeta, len(t.Templates))
	for key, path := range t.Templates {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open template %s: %w", path, err)
		}
		meta, err := ParseTemplateMeta(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		out[key] = meta
	}
	return out, nil
}

func getAttr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

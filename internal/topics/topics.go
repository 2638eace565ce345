// Package topics models the conceptual (non-reference) documentation tree.
//
// The sitemap builder only walks an already-ordered tree; the provider in
// this package builds one by directory structure, taking titles from YAML
// frontmatter or the first markdown heading.
package topics

// Topic is one unit of conceptual documentation, optionally organized into
// parent/child relationships. A pure grouping topic has children and no URL.
type Topic struct {
	Title    string
	URL      string
	Children []*Topic
}

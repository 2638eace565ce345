// Package sitemap builds the hierarchical navigation model spanning API
// reference and conceptual topic pages.
package sitemap

// Node is one navigation entry. A node carries a URL (leaf page), child
// Items (group), or both; never neither. The serialized shape
// {title, url?, items?} is consumed directly by client navigation scripts
// and must stay stable.
type Node struct {
	Title string  `json:"title"`
	URL   string  `json:"url,omitempty"`
	Items []*Node `json:"items,omitempty"`

	// Kind drives template selection during rendering; it is not part of
	// the client-facing shape.
	Kind string `json:"-"`
}

// PageCount returns the number of pages rooted at n: one for the node's own
// URL if present, plus its children's pages.
func (n *Node) PageCount() int {
	count := 0
	if n.URL != "" {
		count = 1
	}
	for _, child := range n.Items {
		count += child.PageCount()
	}
	return count
}

// Sitemap is the navigation tree for one documentation run. Built once,
// never mutated afterwards.
type Sitemap struct {
	BaseURL string
	Items   []*Node
}

// PageCount returns the total number of pages the renderer will produce.
// This seeds progress-reporting granularity for the whole run.
func (s *Sitemap) PageCount() int {
	count := 0
	for _, n := range s.Items {
		count += n.PageCount()
	}
	return count
}

// Walk visits every node depth-first in navigation order.
func (s *Sitemap) Walk(visit func(*Node)) {
	var rec func(*Node)
	rec = func(n *Node) {
		visit(n)
		for _, child := range n.Items {
			rec(child)
		}
	}
	for _, n := range s.Items {
		rec(n)
	}
}

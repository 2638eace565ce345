package sitemap

import (
	"net/url"
	"path"

	"git.home.luguber.info/inful/apidocs/internal/metadata"
	"git.home.luguber.info/inful/apidocs/internal/topics"
)

// Node kinds, used for template selection during rendering.
const (
	KindNamespace = "namespace"
	KindType      = "type"
	KindMember    = "member"
	KindTopic     = "topic"
)

// Options controls page granularity for the built tree.
type Options struct {
	BaseURL        string
	NamespacePages bool // namespaces get dedicated pages grouping their types
	MemberPages    bool // members get dedicated pages grouped per category
}

// Build constructs the navigation tree from the metadata model and topic
// tree. The "API" node is present iff the model supplies at least one
// assembly; the "Topics" node iff at least one topic exists. Namespace,
// type and topic order is preserved from the providers; only member-group
// order is fixed here. Every URL is root-relative with fragments stripped,
// since navigation entries always target whole pages.
func Build(model *metadata.Model, topicTree []*topics.Topic, opts Options) *Sitemap {
	sm := &Sitemap{BaseURL: opts.BaseURL}

	if model != nil && len(model.Assemblies) > 0 {
		api := &Node{Title: "API"}
		for _, asm := range model.Assemblies {
			for _, ns := range asm.Namespaces {
				api.Items = append(api.Items, buildNamespace(ns, opts)...)
			}
		}
		sm.Items = append(sm.Items, api)
	}

	if len(topicTree) > 0 {
		topicsNode := &Node{Title: "Topics"}
		for _, t := range topicTree {
			topicsNode.Items = append(topicsNode.Items, buildTopic(t))
		}
		sm.Items = append(sm.Items, topicsNode)
	}

	return sm
}

func buildNamespace(ns metadata.Namespace, opts Options) []*Node {
	typeNodes := make([]*Node, 0, len(ns.Types))
	for _, t := range ns.Types {
		typeNodes = append(typeNodes, buildType(t, opts))
	}

	if !opts.NamespacePages {
		return typeNodes
	}
	return []*Node{{
		Title: ns.Name,
		URL:   resolveURL(ns.URL),
		Items: typeNodes,
		Kind:  KindNamespace,
	}}
}

func buildType(t metadata.Type, opts Options) *Node {
	node := &Node{Title: t.Name, URL: resolveURL(t.URL), Kind: KindType}

	// Enum members share the enum's own page.
	if !opts.MemberPages || t.IsEnum() {
		return node
	}

	for _, group := range GroupMembers(t.Members) {
		groupNode := &Node{Title: group.Name}
		for _, m := range group.Members {
			groupNode.Items = append(groupNode.Items, &Node{
				Title: m.Display(),
				URL:   resolveURL(m.URL),
				Kind:  KindMember,
			})
		}
		node.Items = append(node.Items, groupNode)
	}
	return node
}

func buildTopic(t *topics.Topic) *Node {
	node := &Node{Title: t.Title, URL: resolveURL(t.URL), Kind: KindTopic}
	for _, child := range t.Children {
		node.Items = append(node.Items, buildTopic(child))
	}
	return node
}

// resolveURL normalizes an address to a root-relative path with any
// fragment stripped. Unparseable addresses are left as navigation-less
// (the node becomes a pure group).
func resolveURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	p := u.EscapedPath()
	if p == "" {
		return ""
	}
	return path.Join("/", p)
}

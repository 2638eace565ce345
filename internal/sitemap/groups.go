package sitemap

import (
	"git.home.luguber.info/inful/apidocs/internal/metadata"
	"git.home.luguber.info/inful/apidocs/internal/util/sets"
)

// Member group names in their fixed navigation order. Explicit interface
// implementations come last regardless of the member's natural category.
const (
	GroupProperties   = "Properties"
	GroupMethods      = "Methods"
	GroupEvents       = "Events"
	GroupOperators    = "Operators"
	GroupFields       = "Fields"
	GroupConstructors = "Constructors"
	GroupExplicit     = "Explicit Interface Implementations"
)

var groupOrder = []string{
	GroupProperties, GroupMethods, GroupEvents,
	GroupOperators, GroupFields, GroupConstructors, GroupExplicit,
}

var kindGroups = map[metadata.MemberKind]string{
	metadata.MemberKindProperty:    GroupProperties,
	metadata.MemberKindMethod:      GroupMethods,
	metadata.MemberKindEvent:       GroupEvents,
	metadata.MemberKindOperator:    GroupOperators,
	metadata.MemberKindField:       GroupFields,
	metadata.MemberKindConstructor: GroupConstructors,
}

// Group is one navigation category with its representative member entries.
type Group struct {
	Name    string
	Members []metadata.Member
}

// GroupMembers classifies a type's members into navigation categories in the
// fixed group order. Constructors collapse to one representative entry (they
// share one page); properties, methods and events sharing a display name
// (overloads on one page) collapse to their first occurrence. A
// Property/Method/Event flagged as an explicit interface implementation is
// redirected into the explicit group regardless of its natural category.
func GroupMembers(members []metadata.Member) []Group {
	byGroup := map[string][]metadata.Member{}
	seenNames := map[string]sets.Set[string]{}

	for _, m := range members {
		group, ok := kindGroups[m.Kind]
		if !ok {
			continue
		}

		switch m.Kind {
		case metadata.MemberKindProperty, metadata.MemberKindMethod, metadata.MemberKindEvent:
			if m.ExplicitInterfaceImpl {
				group = GroupExplicit
				break
			}
			if seenNames[group] == nil {
				seenNames[group] = sets.New[string]()
			}
			if !seenNames[group].Add(m.Display()) {
				continue // overloads share one page, keep the first entry
			}
		case metadata.MemberKindConstructor:
			if len(byGroup[group]) > 0 {
				continue // all constructors share one page
			}
		}

		byGroup[group] = append(byGroup[group], m)
	}

	groups := make([]Group, 0, len(byGroup))
	for _, name := range groupOrder {
		if entries := byGroup[name]; len(entries) > 0 {
			groups = append(groups, Group{Name: name, Members: entries})
		}
	}
	return groups
}

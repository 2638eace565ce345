// Package metadata defines the consumed API model surface: assemblies,
// namespaces, types and members, each carrying a name and an address.
// Extraction from compiled binaries happens upstream; this package only
// loads an already-extracted model.
package metadata

// TypeKind categorizes a type for navigation purposes.
type TypeKind string

const (
	TypeKindClass     TypeKind = "class"
	TypeKindStruct    TypeKind = "struct"
	TypeKindInterface TypeKind = "interface"
	TypeKindEnum      TypeKind = "enum"
	TypeKindDelegate  TypeKind = "delegate"
)

// MemberKind categorizes a member for grouping.
type MemberKind string

const (
	MemberKindProperty    MemberKind = "property"
	MemberKindMethod      MemberKind = "method"
	MemberKindEvent       MemberKind = "event"
	MemberKindOperator    MemberKind = "operator"
	MemberKindField       MemberKind = "field"
	MemberKindConstructor MemberKind = "constructor"
)

// Model is the root of the consumed metadata model.
type Model struct {
	Assemblies []Assembly `yaml:"assemblies"`
}

// Assembly is one compiled library's worth of namespaces.
type Assembly struct {
	Name       string      `yaml:"name"`
	Namespaces []Namespace `yaml:"namespaces"`
}

// Namespace groups types and, when namespace pages are enabled, gets a
// dedicated page at URL.
type Namespace struct {
	Name  string `yaml:"name"`
	URL   string `yaml:"url,omitempty"`
	Types []Type `yaml:"types"`
}

// Type is a documented type with its ordered member collection.
type Type struct {
	Name    string   `yaml:"name"`
	URL     string   `yaml:"url"`
	Kind    TypeKind `yaml:"kind"`
	Members []Member `yaml:"members,omitempty"`
}

// IsEnum reports whether the type is an enumeration. Enum members share the
// enum's own page and never get member group nodes.
func (t Type) IsEnum() bool { return t.Kind == TypeKindEnum }

// Member is a documented type member. DisplayName is the overload-shared
// name shown in navigation; URL is the shared page for all overloads.
type Member struct {
	Name                  string     `yaml:"name"`
	DisplayName           string     `yaml:"display_name,omitempty"`
	URL                   string     `yaml:"url"`
	Kind                  MemberKind `yaml:"kind"`
	ExplicitInterfaceImpl bool       `yaml:"explicit_interface_impl,omitempty"`
}

// Display returns the navigation label for the member.
func (m Member) Display() string {
	if m.DisplayName != "" {
		return m.DisplayName
	}
	return m.Name
}

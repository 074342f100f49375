// Package span defines the node and offset model shared by the parser adapter
// and the patcher. Nodes carry half-open byte spans into the text that was
// parsed; they never change after a tree is built.
package span

import "strconv"

// Kind classifies the syntactic construct a node represents.
//
// The set is closed: every grammar type the parser adapter can produce maps to
// exactly one Kind, and anything the package does not name maps to KindOther.
type Kind uint16

// Node kinds.
const (
	KindOther Kind = iota

	// Script constructs.
	KindProgram
	KindImport
	KindImportClause
	KindNamedImports
	KindImportSpecifier
	KindNamespaceImport
	KindIdentifier
	KindString
	KindStringFragment
	KindExport
	KindComment

	// Style constructs.
	KindStylesheet
	KindRuleSet

	// Markup constructs.
	KindElement
	KindText
	KindAttribute

	// Recovered syntax errors.
	KindError

	kindCount
)

//nolint:gochecknoglobals // Read-only lookup table.
var kindNames = [kindCount]string{
	KindOther:           "Other",
	KindProgram:         "Program",
	KindImport:          "Import",
	KindImportClause:    "ImportClause",
	KindNamedImports:    "NamedImports",
	KindImportSpecifier: "ImportSpecifier",
	KindNamespaceImport: "NamespaceImport",
	KindIdentifier:      "Identifier",
	KindString:          "String",
	KindStringFragment:  "StringFragment",
	KindExport:          "Export",
	KindComment:         "Comment",
	KindStylesheet:      "Stylesheet",
	KindRuleSet:         "RuleSet",
	KindElement:         "Element",
	KindText:            "Text",
	KindAttribute:       "Attribute",
	KindError:           "Error",
}

// grammarKinds maps tree-sitter node types to kinds.
//
//nolint:gochecknoglobals // Read-only lookup table.
var grammarKinds = map[string]Kind{
	// javascript / typescript
	"program":          KindProgram,
	"import_statement": KindImport,
	"import_clause":    KindImportClause,
	"named_imports":    KindNamedImports,
	"import_specifier": KindImportSpecifier,
	"namespace_import": KindNamespaceImport,
	"identifier":       KindIdentifier,
	"string":           KindString,
	"string_fragment":  KindStringFragment,
	"export_statement": KindExport,
	"comment":          KindComment,

	// css
	"stylesheet": KindStylesheet,
	"rule_set":   KindRuleSet,

	// html
	"element":        KindElement,
	"script_element": KindElement,
	"style_element":  KindElement,
	"text":           KindText,
	"raw_text":       KindText,
	"attribute":      KindAttribute,

	"ERROR": KindError,
}

// String returns the kind name.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Kinds returns every defined kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := KindOther; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// KindOf returns the kind for a grammar node type. Unknown types map to
// KindOther.
func KindOf(grammarType string) Kind {
	if k, ok := grammarKinds[grammarType]; ok {
		return k
	}
	return KindOther
}

// Node is a single node of a parsed tree.
type Node struct {
	// Kind identifies the construct.
	Kind Kind

	// Type is the raw grammar type the node was built from.
	Type string

	// Field is the name of the field this node occupies in its parent,
	// or empty when the grammar does not name it.
	Field string

	// Named is false for anonymous grammar tokens such as punctuation
	// and keywords.
	Named bool

	// Start and End are byte offsets into the parsed text, half-open.
	Start int
	End   int

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node
}

// Range returns the node's byte span.
func (n *Node) Range() Range {
	return Range{Start: n.Start, End: n.End}
}

// Len returns the span length in bytes.
func (n *Node) Len() int {
	return n.End - n.Start
}

// Is reports whether the node has the given kind. A nil node is never any kind.
func (n *Node) Is(kind Kind) bool {
	return n != nil && n.Kind == kind
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// Child returns the first direct child occupying the named field, or nil.
func (n *Node) Child(field string) *Node {
	for child := n.FirstChild; child != nil; child = child.Next {
		if child.Field == field {
			return child
		}
	}
	return nil
}

// ChildrenByKind returns the direct children of the given kind.
func (n *Node) ChildrenByKind(kind Kind) []*Node {
	var out []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		if child.Kind == kind {
			out = append(out, child)
		}
	}
	return out
}

// FirstChildOfKind returns the first direct child of the given kind, or nil.
func (n *Node) FirstChildOfKind(kind Kind) *Node {
	for child := n.FirstChild; child != nil; child = child.Next {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

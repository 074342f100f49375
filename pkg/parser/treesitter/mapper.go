package treesitter

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/yaklabco/sveltepatch/pkg/span"
)

// convert copies a tree-sitter subtree into span nodes so that no
// tree-sitter handle outlives the parse. Offsets stay in source coordinates.
func convert(n *sitter.Node, field string) *span.Node {
	out := &span.Node{
		Kind:  span.KindOf(n.Type()),
		Type:  n.Type(),
		Field: field,
		Named: n.IsNamed(),
		Start: int(n.StartByte()),
		End:   int(n.EndByte()),
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		span.AppendChild(out, convert(child, n.FieldNameForChild(i)))
	}

	return out
}

// errorSite is the location of the first ERROR or MISSING node.
type errorSite struct {
	nodeType string
	missing  bool
	start    int
	end      int
}

func shiftNode(site errorSite, delta int) errorSite {
	site.start += delta
	site.end += delta
	return site
}

// firstError finds the first ERROR or MISSING node in pre-order.
func firstError(root *sitter.Node) errorSite {
	site := errorSite{nodeType: root.Type(), start: int(root.StartByte()), end: int(root.EndByte())}

	var visit func(n *sitter.Node) bool
	visit = func(n *sitter.Node) bool {
		if n.Type() == "ERROR" || n.IsMissing() {
			site = errorSite{
				nodeType: n.Type(),
				missing:  n.IsMissing(),
				start:    int(n.StartByte()),
				end:      int(n.EndByte()),
			}
			return true
		}
		if !n.HasError() {
			return false
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			if child := n.Child(i); child != nil && visit(child) {
				return true
			}
		}
		return false
	}
	visit(root)

	return site
}

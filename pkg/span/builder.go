package span

// NewNode creates a detached node. The kind is derived from the grammar type.
func NewNode(grammarType string, start, end int) *Node {
	return &Node{
		Kind:  KindOf(grammarType),
		Type:  grammarType,
		Named: true,
		Start: start,
		End:   end,
	}
}

// AppendChild appends a child node to a parent.
// It maintains the parent/child/sibling relationships.
func AppendChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}

	child.Parent = parent
	child.Prev = parent.LastChild
	child.Next = nil

	if parent.LastChild != nil {
		parent.LastChild.Next = child
	} else {
		parent.FirstChild = child
	}

	parent.LastChild = child
}

// Shift moves the spans of root and all of its descendants by delta bytes.
// It is only meant for trees under construction.
func Shift(root *Node, delta int) {
	if delta == 0 {
		return
	}
	//nolint:errcheck // The callback never fails.
	Walk(root, func(n *Node) error {
		n.Start += delta
		n.End += delta
		return nil
	})
}

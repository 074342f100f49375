// Package fix splices patched blocks back into a component and renders the
// difference between the original and patched text.
package fix

import "fmt"

// BlockEdit replaces the content of one block, the bytes [Start, End) of
// the component, with its patched text.
type BlockEdit struct {
	// Block names the block in errors, e.g. "script".
	Block string

	Start int
	End   int

	// Text is the patched block content.
	Text string
}

// Delta returns the change in component length the edit causes.
func (e BlockEdit) Delta() int {
	return len(e.Text) - (e.End - e.Start)
}

func (e BlockEdit) String() string {
	name := e.Block
	if name == "" {
		name = "block"
	} else {
		name += " block"
	}
	return fmt.Sprintf("%s [%d:%d]", name, e.Start, e.End)
}

// Builder collects the block edits for one component.
type Builder struct {
	edits []BlockEdit
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Replace records that the content of block between start and end becomes
// text.
func (b *Builder) Replace(block string, start, end int, text string) {
	b.edits = append(b.edits, BlockEdit{Block: block, Start: start, End: end, Text: text})
}

// Edits returns the recorded edits in the order they were added.
func (b *Builder) Edits() []BlockEdit {
	return b.edits
}

// Len returns the number of recorded edits.
func (b *Builder) Len() int {
	return len(b.edits)
}

package patch

import (
	"fmt"
	"strings"

	"github.com/yaklabco/sveltepatch/pkg/extract"
	"github.com/yaklabco/sveltepatch/pkg/span"
)

// Edit records one rewrite applied to the live buffer.
type Edit struct {
	// Start and End delimit the replaced text in the buffer as it was when
	// the edit was applied.
	Start int
	End   int

	// OldText is the replaced text; NewText replaces it.
	OldText string
	NewText string

	// Node is the node passed to Replace, or nil for ReplaceLiteral.
	Node *span.Node
}

// Delta returns the change in buffer length caused by the edit.
func (e Edit) Delta() int {
	return len(e.NewText) - len(e.OldText)
}

// Pass is the state of one patching pass: the live buffer and the cursor
// that maps recorded node offsets onto it. A Pass is owned by a single
// goroutine and must not be retained after the visitor returns.
type Pass struct {
	region extract.Region
	opts   Options

	// buffer is the live text; it starts as region.Text.
	buffer string

	// cursor satisfies live = recorded + cursor for every node whose text
	// has not been rewritten.
	cursor int

	edits []Edit

	// current is the live range of the node being visited and touched
	// records whether a rewrite overlapped it.
	current span.Range
	touched bool
}

func newPass(region extract.Region, opts Options) *Pass {
	return &Pass{
		region: region,
		opts:   opts,
		buffer: region.Text,
		cursor: -region.Offset,
	}
}

// Region returns the region being patched.
func (p *Pass) Region() extract.Region {
	return p.region
}

// Options returns the options the pass runs with.
func (p *Pass) Options() Options {
	return p.opts
}

// Cursor returns the current offset correction.
func (p *Pass) Cursor() int {
	return p.cursor
}

// Text returns the live buffer.
func (p *Pass) Text() string {
	return p.buffer
}

// Edits returns the rewrites applied so far, in order.
func (p *Pass) Edits() []Edit {
	return p.edits
}

// Live returns the node's span in live buffer coordinates.
func (p *Pass) Live(n *span.Node) span.Range {
	return n.Range().Shift(p.cursor)
}

// Read returns the node's current text in the live buffer. A range that
// extends past either end of the buffer is clamped.
func (p *Pass) Read(n *span.Node) string {
	live := p.Live(n)
	start := min(max(live.Start, 0), len(p.buffer))
	end := min(max(live.End, start), len(p.buffer))
	return p.buffer[start:end]
}

// Replace rewrites the node's current text with text.
//
// With StrategySplice the node's exact live range is replaced. With
// StrategyFirstMatch this is ReplaceLiteral(Read(n), text). Under both
// strategies a live range outside the buffer is a *RangeError.
func (p *Pass) Replace(n *span.Node, text string) error {
	live := p.Live(n)
	if !live.Within(len(p.buffer)) {
		return &RangeError{Node: n, Live: live, BufLen: len(p.buffer)}
	}

	if p.opts.Strategy == StrategyFirstMatch {
		return p.replaceFirst(p.buffer[live.Start:live.End], text, n)
	}
	p.apply(live.Start, live.End, text, n)
	return nil
}

// ReplaceLiteral rewrites an occurrence of oldText with newText.
//
// With StrategyFirstMatch the first occurrence anywhere in the buffer is
// replaced. With StrategySplice the search starts at the live start of the
// node being visited, so text before it is never touched. Returns
// ErrLiteralNotFound if there is no occurrence.
func (p *Pass) ReplaceLiteral(oldText, newText string) error {
	if p.opts.Strategy == StrategyFirstMatch {
		return p.replaceFirst(oldText, newText, nil)
	}

	from := min(max(p.current.Start, 0), len(p.buffer))
	idx := strings.Index(p.buffer[from:], oldText)
	if idx < 0 {
		return fmt.Errorf("%w: %q after offset %d", ErrLiteralNotFound, oldText, from)
	}
	p.apply(from+idx, from+idx+len(oldText), newText, nil)
	return nil
}

func (p *Pass) replaceFirst(oldText, newText string, n *span.Node) error {
	idx := strings.Index(p.buffer, oldText)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrLiteralNotFound, oldText)
	}
	p.apply(idx, idx+len(oldText), newText, n)
	return nil
}

// apply splices text over buffer[start:end] and moves the cursor by the
// net length change.
func (p *Pass) apply(start, end int, text string, n *span.Node) {
	edit := Edit{
		Start:   start,
		End:     end,
		OldText: p.buffer[start:end],
		NewText: text,
		Node:    n,
	}

	p.buffer = p.buffer[:start] + text + p.buffer[end:]
	p.cursor += edit.Delta()
	p.edits = append(p.edits, edit)

	replaced := span.Range{Start: start, End: end}
	switch {
	case replaced.Overlaps(p.current) || (start >= p.current.Start && end <= p.current.End):
		p.touched = true
		p.current.End = max(p.current.End+edit.Delta(), p.current.Start)
	case end <= p.current.Start:
		p.current = p.current.Shift(edit.Delta())
	}
}

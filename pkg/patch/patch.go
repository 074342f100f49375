// Package patch rewrites a region of a component by walking its syntax tree
// and applying visitor-chosen rewrites to a live copy of the text.
//
// Node offsets are recorded once, against the wrapped text the parser saw.
// The pass keeps a cursor such that for every node not yet rewritten
//
//	live offset = recorded offset + cursor
//
// The cursor starts at minus the wrapper length and moves by the net length
// change of every applied rewrite, in traversal order.
package patch

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/sveltepatch/pkg/extract"
	"github.com/yaklabco/sveltepatch/pkg/span"
)

// Parser parses a region's wrapped text into a tree whose offsets index
// region.Wrapped.
//
// Implementations must be deterministic, side-effect free and must return
// either a tree or an error, never both.
type Parser interface {
	Parse(ctx context.Context, region extract.Region) (*span.Node, error)
}

// ParseFunc adapts a function to the Parser interface.
type ParseFunc func(ctx context.Context, region extract.Region) (*span.Node, error)

// Parse calls f.
func (f ParseFunc) Parse(ctx context.Context, region extract.Region) (*span.Node, error) {
	return f(ctx, region)
}

// Visitor decides, per node, whether to rewrite text. It is called in
// pre-order with the node's parent (nil for the root). Its only effect on
// the output is through pass.Replace and pass.ReplaceLiteral; the pass
// keeps the cursor consistent.
//
// Returning span.SkipChildren prunes the node's subtree. Any other error
// aborts the pass.
type Visitor interface {
	Visit(pass *Pass, node, parent *span.Node) error
}

// VisitorFunc adapts a function to the Visitor interface.
type VisitorFunc func(pass *Pass, node, parent *span.Node) error

// Visit calls f.
func (f VisitorFunc) Visit(pass *Pass, node, parent *span.Node) error {
	return f(pass, node, parent)
}

// Result is the output of a successful pass.
type Result struct {
	// Text is the patched region text.
	Text string

	// Edits lists the rewrites in the order they were applied.
	Edits []Edit
}

// Changed reports whether any rewrite was applied.
func (r *Result) Changed() bool {
	return r != nil && len(r.Edits) > 0
}

// Patch parses region, walks the tree in pre-order and returns the region's
// text with every rewrite the visitor made.
//
// A parser failure is returned as a *ParseError and a visitor failure as a
// *VisitorError; in both cases the Result is nil and no partially patched
// text escapes. ctx is only consulted between nodes.
func Patch(
	ctx context.Context,
	region extract.Region,
	parser Parser,
	visitor Visitor,
	opts Options,
) (*Result, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	root, err := parser.Parse(ctx, region)
	if err != nil {
		return nil, &ParseError{Kind: region.Kind, Err: err}
	}

	pass := newPass(region, opts)

	err = span.Walk(root, func(node *span.Node) error {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("patch cancelled: %w", err)
		}
		return pass.visit(visitor, node)
	})
	if err != nil {
		return nil, err
	}

	return &Result{Text: pass.buffer, Edits: pass.edits}, nil
}

// visit offers one node to the visitor and decides whether to descend.
func (p *Pass) visit(visitor Visitor, node *span.Node) error {
	p.current = p.Live(node)
	p.touched = false

	if err := visitor.Visit(p, node, node.Parent); err != nil {
		if errors.Is(err, span.SkipChildren) {
			return span.SkipChildren
		}
		return &VisitorError{Node: node, Err: err}
	}

	if p.touched && p.opts.Subtrees == SubtreeSkip {
		return span.SkipChildren
	}
	return nil
}

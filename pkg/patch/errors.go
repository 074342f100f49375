package patch

import (
	"errors"
	"fmt"

	"github.com/yaklabco/sveltepatch/pkg/extract"
	"github.com/yaklabco/sveltepatch/pkg/span"
)

// ErrLiteralNotFound is returned by ReplaceLiteral when the old text does not
// occur where the strategy searches for it.
var ErrLiteralNotFound = errors.New("literal not found in buffer")

// ParseError reports that the parser could not produce a tree for a region.
// The parser's error is available through errors.Unwrap.
type ParseError struct {
	Kind extract.Kind
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// VisitorError reports that the visitor failed on a node. The pass that
// produced it has no usable output.
type VisitorError struct {
	Node *span.Node
	Err  error
}

func (e *VisitorError) Error() string {
	if e.Node == nil {
		return fmt.Sprintf("visit: %v", e.Err)
	}
	return fmt.Sprintf("visit %s [%d:%d]: %v", e.Node.Kind, e.Node.Start, e.Node.End, e.Err)
}

func (e *VisitorError) Unwrap() error {
	return e.Err
}

// RangeError reports that a node's live range falls outside the buffer,
// which happens when a visitor rewrites text a later node still points into.
type RangeError struct {
	Node   *span.Node
	Live   span.Range
	BufLen int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("live range [%d:%d] of %s is outside buffer of length %d",
		e.Live.Start, e.Live.End, e.Node.Kind, e.BufLen)
}

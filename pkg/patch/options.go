package patch

import (
	"errors"
	"fmt"
)

// Strategy selects how a rewrite locates the text it replaces.
type Strategy string

const (
	// StrategySplice replaces the exact live range of the node
	// (recorded offsets plus cursor).
	StrategySplice Strategy = "splice"

	// StrategyFirstMatch replaces the first occurrence of the node's current
	// text anywhere in the buffer. A duplicate of that text earlier in the
	// buffer is rewritten instead of the node. Kept for output parity with
	// the legacy preprocessor, except that a node whose live range left the
	// buffer is a *RangeError rather than an insertion at offset 0.
	StrategyFirstMatch Strategy = "first-match"
)

// SubtreePolicy selects what happens to a node's children once the node's
// own text has been rewritten during its visit.
type SubtreePolicy string

const (
	// SubtreeSkip does not visit the children of a node whose live span was
	// rewritten while visiting it. Their recorded offsets no longer describe
	// the buffer.
	SubtreeSkip SubtreePolicy = "skip"

	// SubtreeDescend always visits children, as the legacy preprocessor did.
	// Visitors must then guard against acting on text that was already
	// rewritten away.
	SubtreeDescend SubtreePolicy = "descend"
)

// ErrInvalidOption is returned for unknown strategy or policy names.
var ErrInvalidOption = errors.New("invalid patch option")

// Options controls a patching pass.
type Options struct {
	// Strategy selects splice or first-match replacement.
	Strategy Strategy

	// Subtrees selects whether rewritten subtrees are still visited.
	Subtrees SubtreePolicy
}

// DefaultOptions returns exact-offset splicing with rewritten subtrees skipped.
func DefaultOptions() Options {
	return Options{
		Strategy: StrategySplice,
		Subtrees: SubtreeSkip,
	}
}

// LegacyOptions reproduces the legacy preprocessor byte for byte.
func LegacyOptions() Options {
	return Options{
		Strategy: StrategyFirstMatch,
		Subtrees: SubtreeDescend,
	}
}

// withDefaults fills zero fields from DefaultOptions.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Strategy == "" {
		o.Strategy = def.Strategy
	}
	if o.Subtrees == "" {
		o.Subtrees = def.Subtrees
	}
	return o
}

// Validate reports unknown option values.
func (o Options) Validate() error {
	o = o.withDefaults()
	if _, err := ParseStrategy(string(o.Strategy)); err != nil {
		return err
	}
	if _, err := ParseSubtreePolicy(string(o.Subtrees)); err != nil {
		return err
	}
	return nil
}

// ParseStrategy converts a name into a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(name) {
	case StrategySplice, StrategyFirstMatch:
		return Strategy(name), nil
	default:
		return "", fmt.Errorf("%w: strategy %q (expected %q or %q)",
			ErrInvalidOption, name, StrategySplice, StrategyFirstMatch)
	}
}

// ParseSubtreePolicy converts a name into a SubtreePolicy.
func ParseSubtreePolicy(name string) (SubtreePolicy, error) {
	switch SubtreePolicy(name) {
	case SubtreeSkip, SubtreeDescend:
		return SubtreePolicy(name), nil
	default:
		return "", fmt.Errorf("%w: subtree policy %q (expected %q or %q)",
			ErrInvalidOption, name, SubtreeSkip, SubtreeDescend)
	}
}

// Package extract turns a Svelte component, or one of its sub-regions, into
// text that a grammar can parse standalone.
package extract

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies a sub-language of a component.
type Kind string

const (
	// KindScript is an embedded script block.
	KindScript Kind = "script"

	// KindStyle is an embedded style block.
	KindStyle Kind = "style"

	// KindMarkup is the component's root markup.
	KindMarkup Kind = "markup"
)

// ErrUnknownKind is returned for a sub-language kind outside the known set.
var ErrUnknownKind = errors.New("unknown sub-language kind")

// Kinds returns the recognised sub-language kinds.
func Kinds() []Kind {
	return []Kind{KindScript, KindStyle, KindMarkup}
}

// ParseKind validates a kind name.
func ParseKind(name string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(name)))
	if !kind.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return kind, nil
}

// IsValid reports whether k is one of the recognised kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindScript, KindStyle, KindMarkup:
		return true
	default:
		return false
	}
}

// Wrapper returns the synthetic prefix and suffix a kind needs to parse.
func (k Kind) Wrapper() (prefix, suffix string) {
	switch k {
	case KindScript:
		return "<script>", "</script>"
	case KindStyle:
		return "<style>", "</style>"
	default:
		return "", ""
	}
}

// Region is a sub-region ready to be parsed and patched.
type Region struct {
	// Kind is the sub-language of the region.
	Kind Kind

	// Text is the region as extracted. Patching starts from this text.
	Text string

	// Wrapped is Text surrounded by the kind's synthetic wrapper; this is
	// what the parser sees.
	Wrapped string

	// Offset is the length of the synthetic prefix in Wrapped. Node offsets
	// minus Offset are offsets into Text.
	Offset int

	// Language is the canonical language name of the region's content
	// (for example "JavaScript" or "TypeScript"). Empty means the kind's
	// default language.
	Language string
}

// Extract builds the Region for content of the given kind. It has no side
// effects.
func Extract(content string, kind Kind) (Region, error) {
	if !kind.IsValid() {
		return Region{}, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}

	prefix, suffix := kind.Wrapper()
	return Region{
		Kind:    kind,
		Text:    content,
		Wrapped: prefix + content + suffix,
		Offset:  len(prefix),
	}, nil
}

// Unwrap maps a range in Wrapped coordinates onto Text coordinates.
func (r Region) Unwrap(start, end int) (int, int) {
	return start - r.Offset, end - r.Offset
}

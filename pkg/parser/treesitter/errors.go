package treesitter

import (
	"fmt"

	"github.com/yaklabco/sveltepatch/pkg/extract"
	"github.com/yaklabco/sveltepatch/pkg/span"
)

// snippetLen bounds the source excerpt carried by a SyntaxError.
const snippetLen = 40

// SyntaxError reports that a region does not parse cleanly.
type SyntaxError struct {
	// Language is the grammar that rejected the text.
	Language string

	// Offset is the byte offset of the error in the region's Text.
	// It is negative when the error lies in the synthetic wrapper.
	Offset int

	// Position is the 1-based line and column of Offset in the region's Text.
	Position span.Position

	// Missing is true when the grammar expected a token that is absent.
	Missing bool

	// Expected is the missing token's type when Missing is true.
	Expected string

	// Near is a short excerpt of the text at Offset.
	Near string
}

func (e *SyntaxError) Error() string {
	if e.Missing {
		return fmt.Sprintf("%s syntax error at %d:%d: missing %q",
			e.Language, e.Position.Line, e.Position.Column, e.Expected)
	}
	return fmt.Sprintf("%s syntax error at %d:%d near %q",
		e.Language, e.Position.Line, e.Position.Column, e.Near)
}

func newSyntaxError(region extract.Region, language string, site errorSite) *SyntaxError {
	offset := site.start - region.Offset
	clamped := min(max(offset, 0), len(region.Text))

	near := region.Text[clamped:]
	if len(near) > snippetLen {
		near = near[:snippetLen]
	}

	err := &SyntaxError{
		Language: language,
		Offset:   offset,
		Position: span.PositionOf(region.Text, clamped),
		Missing:  site.missing,
		Near:     near,
	}
	if site.missing {
		err.Expected = site.nodeType
	}
	return err
}

package fix

import (
	"fmt"
	"slices"
)

// ValidationError reports a block edit that does not fit the component.
type ValidationError struct {
	Edit BlockEdit

	// Size is the component length in bytes.
	Size int
}

func (e *ValidationError) Error() string {
	if e.Edit.Start < 0 || e.Edit.End < e.Edit.Start {
		return fmt.Sprintf("%s is not a valid range", e.Edit)
	}
	return fmt.Sprintf("%s lies outside the %d-byte component", e.Edit, e.Size)
}

// ConflictError reports two block edits whose ranges overlap. First starts
// no later than Second.
type ConflictError struct {
	First  BlockEdit
	Second BlockEdit
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s overlaps %s", e.First, e.Second)
}

// ordered checks edits against a component of size bytes and returns a copy
// sorted by position. Edits with equal ranges keep their relative order.
func ordered(edits []BlockEdit, size int) ([]BlockEdit, error) {
	for _, edit := range edits {
		if edit.Start < 0 || edit.End < edit.Start || edit.End > size {
			return nil, &ValidationError{Edit: edit, Size: size}
		}
	}

	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b BlockEdit) int {
		if a.Start != b.Start {
			return a.Start - b.Start
		}
		return a.End - b.End
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start < sorted[i-1].End {
			return nil, &ConflictError{First: sorted[i-1], Second: sorted[i]}
		}
	}
	return sorted, nil
}

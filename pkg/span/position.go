package span

// Range represents a half-open byte range [Start, End).
type Range struct {
	// Start is the byte index where the range begins (inclusive).
	Start int

	// End is the byte index where the range ends (exclusive).
	End int
}

// Len returns the length of the range in bytes.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains returns true if the given offset is within this range.
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// Overlaps reports whether two ranges share at least one byte. An empty range
// overlaps a range that strictly contains its position.
func (r Range) Overlaps(other Range) bool {
	if r.IsEmpty() {
		return other.Start < r.Start && r.Start < other.End
	}
	if other.IsEmpty() {
		return r.Start < other.Start && other.Start < r.End
	}
	return r.Start < other.End && other.Start < r.End
}

// Shift returns the range moved by delta bytes.
func (r Range) Shift(delta int) Range {
	return Range{Start: r.Start + delta, End: r.End + delta}
}

// Within reports whether the range lies inside [0, length).
func (r Range) Within(length int) bool {
	return r.Start >= 0 && r.Start <= r.End && r.End <= length
}

// Position represents a 1-based line and column.
type Position struct {
	Line   int
	Column int
}

// IsValid returns true if this position has valid (positive) values.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// PositionOf converts a byte offset in text into a 1-based line and column.
// Columns count bytes. Offsets past the end clamp to the end of text.
func PositionOf(text string, offset int) Position {
	if offset > len(text) {
		offset = len(text)
	}
	pos := Position{Line: 1, Column: 1}
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			pos.Line++
			pos.Column = 1
			continue
		}
		pos.Column++
	}
	return pos
}

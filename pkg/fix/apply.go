package fix

import "bytes"

// Apply splices edits into content and returns the reassembled component.
// Edits may arrive in any order. An edit outside content is a
// *ValidationError and two overlapping edits are a *ConflictError; content
// is never modified.
func Apply(content []byte, edits []BlockEdit) ([]byte, error) {
	if len(edits) == 0 {
		return content, nil
	}

	sorted, err := ordered(edits, len(content))
	if err != nil {
		return nil, err
	}

	size := len(content)
	for _, e := range sorted {
		size += e.Delta()
	}

	var out bytes.Buffer
	out.Grow(size)

	cursor := 0
	for _, e := range sorted {
		out.Write(content[cursor:e.Start])
		out.WriteString(e.Text)
		cursor = e.End
	}
	out.Write(content[cursor:])

	return out.Bytes(), nil
}

package span_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/sveltepatch/pkg/span"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		grammarType string
		expected    span.Kind
	}{
		{"program", span.KindProgram},
		{"import_statement", span.KindImport},
		{"import_specifier", span.KindImportSpecifier},
		{"string_fragment", span.KindStringFragment},
		{"rule_set", span.KindRuleSet},
		{"script_element", span.KindElement},
		{"raw_text", span.KindText},
		{"ERROR", span.KindError},
		{"arrow_function", span.KindOther},
		{"", span.KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.grammarType, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, span.KindOf(tt.grammarType))
		})
	}
}

// Every kind must have a name; a kind added without one shows up here.
func TestKindsAreNamed(t *testing.T) {
	t.Parallel()

	seen := make(map[string]span.Kind)
	for _, kind := range span.Kinds() {
		name := kind.String()
		assert.NotEmpty(t, name, "kind %d has no name", kind)
		assert.NotContains(t, name, "Kind(", "kind %d has no name", kind)
		if prev, dup := seen[name]; dup {
			t.Errorf("kinds %d and %d share name %q", prev, kind, name)
		}
		seen[name] = kind
	}
	assert.Equal(t, "Kind(999)", span.Kind(999).String())
}

func TestNodeAccessors(t *testing.T) {
	t.Parallel()

	parent := span.NewNode("named_imports", 0, 10)
	first := span.NewNode("import_specifier", 1, 2)
	second := span.NewNode("import_specifier", 4, 5)
	comma := span.NewNode(",", 2, 3)
	comma.Named = false
	span.AppendChild(parent, first)
	span.AppendChild(parent, comma)
	span.AppendChild(parent, second)

	assert.True(t, parent.HasChildren())
	assert.Len(t, parent.Children(), 3)
	assert.Equal(t, []*span.Node{first, second}, parent.ChildrenByKind(span.KindImportSpecifier))
	assert.Same(t, first, parent.FirstChildOfKind(span.KindImportSpecifier))
	assert.Same(t, parent, second.Parent)
	assert.Same(t, comma, second.Prev)
	assert.Equal(t, 10, parent.Len())
	assert.True(t, parent.Is(span.KindNamedImports))

	var nilNode *span.Node
	assert.False(t, nilNode.Is(span.KindOther))
}

func TestRange(t *testing.T) {
	t.Parallel()

	r := span.Range{Start: 2, End: 6}
	assert.Equal(t, 4, r.Len())
	assert.False(t, r.IsEmpty())
	assert.True(t, r.Contains(2))
	assert.False(t, r.Contains(6))
	assert.True(t, r.Overlaps(span.Range{Start: 5, End: 9}))
	assert.False(t, r.Overlaps(span.Range{Start: 6, End: 9}))
	assert.True(t, r.Overlaps(span.Range{Start: 4, End: 4}))
	assert.False(t, r.Overlaps(span.Range{Start: 2, End: 2}))
	assert.Equal(t, span.Range{Start: -6, End: -2}, r.Shift(-8))
	assert.True(t, r.Within(6))
	assert.False(t, r.Within(5))
	assert.False(t, r.Shift(-3).Within(10))
}

func TestPositionOf(t *testing.T) {
	t.Parallel()

	text := "ab\ncd\n"
	assert.Equal(t, span.Position{Line: 1, Column: 1}, span.PositionOf(text, 0))
	assert.Equal(t, span.Position{Line: 2, Column: 2}, span.PositionOf(text, 4))
	assert.Equal(t, span.Position{Line: 3, Column: 1}, span.PositionOf(text, 99))
	assert.True(t, span.PositionOf(text, 3).IsValid())
}

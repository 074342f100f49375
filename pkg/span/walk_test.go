package span_test

import (
	"errors"
	"testing"

	"github.com/yaklabco/sveltepatch/pkg/span"
)

func buildTestTree() *span.Node {
	// program [0,40)
	//   import_statement [0,24)
	//     import_clause [7,13)
	//       identifier [7,8)
	//     string [19,24)
	//   comment [25,40)
	program := span.NewNode("program", 0, 40)

	imp := span.NewNode("import_statement", 0, 24)
	clause := span.NewNode("import_clause", 7, 13)
	span.AppendChild(clause, span.NewNode("identifier", 7, 8))
	span.AppendChild(imp, clause)
	source := span.NewNode("string", 19, 24)
	source.Field = "source"
	span.AppendChild(imp, source)
	span.AppendChild(program, imp)

	span.AppendChild(program, span.NewNode("comment", 25, 40))

	return program
}

func TestWalk(t *testing.T) {
	t.Parallel()

	var visited []span.Kind
	err := span.Walk(buildTestTree(), func(n *span.Node) error {
		visited = append(visited, n.Kind)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk returned error: %v", err)
	}

	expected := []span.Kind{
		span.KindProgram,
		span.KindImport,
		span.KindImportClause,
		span.KindIdentifier,
		span.KindString,
		span.KindComment,
	}

	if len(visited) != len(expected) {
		t.Fatalf("expected %d nodes, got %d", len(expected), len(visited))
	}
	for i, kind := range expected {
		if visited[i] != kind {
			t.Errorf("node %d: expected %s, got %s", i, kind, visited[i])
		}
	}
}

func TestWalk_NilRoot(t *testing.T) {
	t.Parallel()

	err := span.Walk(nil, func(_ *span.Node) error {
		t.Error("callback should not be called for nil root")
		return nil
	})
	if err != nil {
		t.Errorf("expected nil error for nil root, got %v", err)
	}
}

func TestWalk_SkipChildren(t *testing.T) {
	t.Parallel()

	var visited []span.Kind
	err := span.Walk(buildTestTree(), func(n *span.Node) error {
		visited = append(visited, n.Kind)
		if n.Kind == span.KindImport {
			return span.SkipChildren
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk returned error: %v", err)
	}

	expected := []span.Kind{span.KindProgram, span.KindImport, span.KindComment}
	if len(visited) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, visited)
	}
	for i, kind := range expected {
		if visited[i] != kind {
			t.Errorf("node %d: expected %s, got %s", i, kind, visited[i])
		}
	}
}

func TestWalk_EarlyTermination(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("stop here")
	count := 0

	err := span.Walk(buildTestTree(), func(n *span.Node) error {
		count++
		if n.Kind == span.KindImportClause {
			return expectedErr
		}
		return nil
	})

	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
	if count != 3 {
		t.Errorf("expected 3 nodes before stopping, got %d", count)
	}
}

func TestFindHelpers(t *testing.T) {
	t.Parallel()

	root := buildTestTree()

	imports := span.FindByKind(root, span.KindImport)
	if len(imports) != 1 {
		t.Fatalf("expected 1 import, got %d", len(imports))
	}
	if src := imports[0].Child("source"); src == nil || src.Start != 19 {
		t.Errorf("expected source child at 19, got %+v", src)
	}

	first := span.FindFirst(root, func(n *span.Node) bool { return n.Kind == span.KindIdentifier })
	if first == nil || first.Start != 7 {
		t.Errorf("expected identifier at 7, got %+v", first)
	}

	if span.FindFirst(root, func(n *span.Node) bool { return n.Kind == span.KindRuleSet }) != nil {
		t.Error("expected no rule set")
	}
}

func TestShift(t *testing.T) {
	t.Parallel()

	root := buildTestTree()
	span.Shift(root, 8)

	if root.Start != 8 || root.End != 48 {
		t.Errorf("root not shifted: %+v", root.Range())
	}
	ident := span.FindByKind(root, span.KindIdentifier)[0]
	if ident.Start != 15 || ident.End != 16 {
		t.Errorf("identifier not shifted: %+v", ident.Range())
	}
}

package patch_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/sveltepatch/pkg/extract"
	"github.com/yaklabco/sveltepatch/pkg/patch"
	"github.com/yaklabco/sveltepatch/pkg/span"
)

// literalParser builds a flat tree: a program spanning the region text with
// one string child per double-quoted literal, in wrapped coordinates.
var literalParser = patch.ParseFunc(func(_ context.Context, region extract.Region) (*span.Node, error) {
	root := span.NewNode("program", region.Offset, region.Offset+len(region.Text))
	text := region.Text
	for i := 0; i < len(text); i++ {
		if text[i] != '"' {
			continue
		}
		j := strings.IndexByte(text[i+1:], '"')
		if j < 0 {
			break
		}
		end := i + 1 + j + 1
		span.AppendChild(root, span.NewNode("string", region.Offset+i, region.Offset+end))
		i = end - 1
	}
	return root, nil
})

// treeParser returns a parser that always yields a tree built by build,
// given the region's wrapper offset.
func treeParser(build func(offset int) *span.Node) patch.Parser {
	return patch.ParseFunc(func(_ context.Context, region extract.Region) (*span.Node, error) {
		return build(region.Offset), nil
	})
}

func scriptRegion(t *testing.T, text string) extract.Region {
	t.Helper()
	region, err := extract.Extract(text, extract.KindScript)
	require.NoError(t, err)
	return region
}

func noop(*patch.Pass, *span.Node, *span.Node) error {
	return nil
}

// nthString returns a visitor that rewrites the n-th string node (0-based).
func nthString(n int, text string) patch.VisitorFunc {
	seen := 0
	return func(pass *patch.Pass, node, _ *span.Node) error {
		if !node.Is(span.KindString) {
			return nil
		}
		defer func() { seen++ }()
		if seen != n {
			return nil
		}
		return pass.Replace(node, text)
	}
}

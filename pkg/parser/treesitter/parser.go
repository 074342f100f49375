// Package treesitter provides a patch.Parser implementation backed by
// tree-sitter grammars for HTML, JavaScript, TypeScript and CSS.
package treesitter

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/css"
	"github.com/smacker/go-tree-sitter/html"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/yaklabco/sveltepatch/pkg/extract"
	"github.com/yaklabco/sveltepatch/pkg/span"
)

// ErrNoElement is returned when the wrapped region does not contain the
// element its kind promises.
var ErrNoElement = errors.New("wrapped region has no element")

// Parser parses extracted regions. It holds no tree-sitter state between
// calls and is safe for concurrent use.
type Parser struct{}

// New creates a Parser.
func New() *Parser {
	return &Parser{}
}

// Parse parses region.Wrapped and returns the tree for the region's content.
//
// Script and style regions are parsed as HTML first so the synthetic wrapper
// is consumed by a real grammar; the element's raw text is then parsed with
// the content grammar and its nodes are placed in wrapped coordinates.
// Markup regions are parsed with the HTML grammar directly.
//
// Returns a *SyntaxError if the tree contains ERROR or MISSING nodes.
func (p *Parser) Parse(ctx context.Context, region extract.Region) (*span.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	switch region.Kind {
	case extract.KindScript:
		return p.parseEmbedded(ctx, region, "script_element", scriptLanguage(region.Language))
	case extract.KindStyle:
		return p.parseEmbedded(ctx, region, "style_element", css.GetLanguage())
	case extract.KindMarkup:
		return parseWith(ctx, html.GetLanguage(), region, region.Wrapped, 0)
	default:
		return nil, fmt.Errorf("%w: %q", extract.ErrUnknownKind, string(region.Kind))
	}
}

// parseEmbedded parses the wrapper as HTML, locates the element's raw text
// and parses it with lang.
func (p *Parser) parseEmbedded(
	ctx context.Context,
	region extract.Region,
	elementType string,
	lang *sitter.Language,
) (*span.Node, error) {
	outer, err := parseTree(ctx, html.GetLanguage(), []byte(region.Wrapped))
	if err != nil {
		return nil, err
	}
	defer outer.Close()

	root := outer.RootNode()
	if root.HasError() {
		return nil, newSyntaxError(region, extract.LanguageHTML, firstError(root))
	}

	element := findChild(root, elementType)
	if element == nil {
		return nil, fmt.Errorf("%w: <%s>", ErrNoElement, region.Kind)
	}

	start, end := region.Offset, region.Offset
	if raw := findChild(element, "raw_text"); raw != nil {
		start, end = int(raw.StartByte()), int(raw.EndByte())
	}

	return parseWith(ctx, lang, region, region.Wrapped[start:end], start)
}

// parseWith parses source with lang and maps the tree into wrapped
// coordinates by adding delta to every offset.
func parseWith(
	ctx context.Context,
	lang *sitter.Language,
	region extract.Region,
	source string,
	delta int,
) (*span.Node, error) {
	tree, err := parseTree(ctx, lang, []byte(source))
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, newSyntaxError(region, languageName(region), shiftNode(firstError(root), delta))
	}

	out := convert(root, "")
	span.Shift(out, delta)
	return out, nil
}

func parseTree(ctx context.Context, lang *sitter.Language, source []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(lang)

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse: %w", err)
	}
	return tree, nil
}

func scriptLanguage(name string) *sitter.Language {
	if name == extract.LanguageTypeScript {
		return typescript.GetLanguage()
	}
	return javascript.GetLanguage()
}

func languageName(region extract.Region) string {
	if region.Language != "" {
		return region.Language
	}
	return extract.DefaultLanguage(region.Kind)
}

func findChild(n *sitter.Node, nodeType string) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() == nodeType {
			return child
		}
	}
	return nil
}

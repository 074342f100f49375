// Package preprocess applies a patch visitor to Svelte components, either
// one script body at a time (the shape of a bundler preprocess hook) or to a
// whole component document.
package preprocess

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/sveltepatch/internal/logging"
	"github.com/yaklabco/sveltepatch/pkg/extract"
	"github.com/yaklabco/sveltepatch/pkg/fix"
	"github.com/yaklabco/sveltepatch/pkg/imports"
	"github.com/yaklabco/sveltepatch/pkg/parser/treesitter"
	"github.com/yaklabco/sveltepatch/pkg/patch"
	"github.com/yaklabco/sveltepatch/pkg/span"
)

// vendorDir marks third-party files that are never patched.
const vendorDir = "node_modules"

// Processor runs patch passes over component scripts. It is safe for
// concurrent use when its parser and visitor are.
type Processor struct {
	parser  patch.Parser
	visitor patch.Visitor
	opts    patch.Options
}

// Option configures a Processor.
type Option func(*Processor)

// WithParser replaces the tree-sitter parser.
func WithParser(parser patch.Parser) Option {
	return func(p *Processor) {
		p.parser = parser
	}
}

// WithVisitor replaces the import splitter.
func WithVisitor(visitor patch.Visitor) Option {
	return func(p *Processor) {
		p.visitor = visitor
	}
}

// WithPatchOptions sets the strategy and subtree policy.
func WithPatchOptions(opts patch.Options) Option {
	return func(p *Processor) {
		p.opts = opts
	}
}

// New creates a Processor that splits @paulpopa/icons barrel imports with
// the tree-sitter parser unless configured otherwise.
func New(opts ...Option) *Processor {
	p := &Processor{
		parser:  treesitter.New(),
		visitor: imports.NewSplitter(),
		opts:    patch.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// IsVendored reports whether filename lies under a node_modules directory.
func IsVendored(filename string) bool {
	for _, part := range strings.Split(filepath.ToSlash(filename), "/") {
		if part == vendorDir {
			return true
		}
	}
	return false
}

// Script patches the body of one <script> element. attrs are the element's
// attributes and select the language. Content is returned unchanged when
// filename is empty or vendored.
func (p *Processor) Script(ctx context.Context, filename, content string, attrs map[string]string) (string, error) {
	if filename == "" || IsVendored(filename) {
		return content, nil
	}

	region, err := extract.Extract(content, extract.KindScript)
	if err != nil {
		return "", err
	}
	region.Language = extract.LanguageOf(extract.KindScript, attrs)

	res, err := patch.Patch(ctx, region, p.parser, p.visitor, p.opts)
	if err != nil {
		return "", fmt.Errorf("%s: %w", filename, err)
	}

	if res.Changed() {
		logging.FromContext(ctx).Debug("patched script",
			logging.FieldPath, filename,
			logging.FieldLanguage, region.Language,
			logging.FieldEdits, len(res.Edits))
	}
	return res.Text, nil
}

// BlockResult is the outcome for one script block of a document.
type BlockResult struct {
	Block extract.Block
	Edits []patch.Edit
}

// Changed reports whether the block was rewritten.
func (b BlockResult) Changed() bool {
	return len(b.Edits) > 0
}

// Result is the outcome of patching a document.
type Result struct {
	// Text is the patched document.
	Text string

	// Blocks lists every script block that was patched, in document order.
	Blocks []BlockResult

	// Skipped is true for vendored files, which are returned unchanged.
	Skipped bool
}

// Changed reports whether any block was rewritten.
func (r *Result) Changed() bool {
	for _, block := range r.Blocks {
		if block.Changed() {
			return true
		}
	}
	return false
}

// EditCount returns the total number of rewrites across blocks.
func (r *Result) EditCount() int {
	n := 0
	for _, block := range r.Blocks {
		n += len(block.Edits)
	}
	return n
}

// Document patches every top-level script block of a component and splices
// the patched bodies back into the document. Style blocks and markup are
// copied unchanged.
func (p *Processor) Document(ctx context.Context, filename, content string) (*Result, error) {
	if IsVendored(filename) {
		return &Result{Text: content, Skipped: true}, nil
	}

	blocks, err := extract.Blocks(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	result := &Result{}
	builder := fix.NewBuilder()

	for _, block := range blocks {
		if block.Kind != extract.KindScript {
			continue
		}

		region, err := block.Region(content)
		if err != nil {
			return nil, err
		}

		res, err := patch.Patch(ctx, region, p.parser, p.visitor, p.opts)
		if err != nil {
			pos := span.PositionOf(content, block.Start)
			return nil, fmt.Errorf("%s:%d:%d: %w", filename, pos.Line, pos.Column, err)
		}

		result.Blocks = append(result.Blocks, BlockResult{Block: block, Edits: res.Edits})
		if res.Changed() {
			builder.Replace(string(block.Kind), block.Start, block.End, res.Text)
		}
	}

	text, err := fix.Apply([]byte(content), builder.Edits())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	result.Text = string(text)

	logging.FromContext(ctx).Debug("patched document",
		logging.FieldPath, filename,
		logging.FieldBlock, len(result.Blocks),
		logging.FieldEdits, result.EditCount())

	return result, nil
}

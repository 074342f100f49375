// Package imports provides the barrel-import splitting visitor.
//
// A statement such as
//
//	import {A, B as C} from "@paulpopa/icons"
//
// becomes one default import per specifier:
//
//	import A from "@paulpopa/icons/A.js"
//	import C from "@paulpopa/icons/B.js"
//
// A terminating semicolon is repeated on every generated line, so code that
// follows on the same line stays valid. Under patch.StrategyFirstMatch the
// semicolon is dropped, as the legacy preprocessor did.
package imports

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/yaklabco/sveltepatch/pkg/patch"
	"github.com/yaklabco/sveltepatch/pkg/span"
)

// DefaultPackage is the icon package whose barrel imports are split.
const DefaultPackage = "@paulpopa/icons"

// DefaultExtension is appended to every per-symbol module path.
const DefaultExtension = ".js"

// Splitter is a patch.Visitor that rewrites named imports from the
// configured packages into per-symbol default imports.
//
// A Splitter holds no per-pass state and may be shared by concurrent passes.
type Splitter struct {
	packages  []string
	extension string

	rewritten atomic.Int64
}

// Option configures a Splitter.
type Option func(*Splitter)

// WithPackages sets the packages whose imports are split. Empty entries are
// ignored.
func WithPackages(packages ...string) Option {
	return func(s *Splitter) {
		s.packages = s.packages[:0]
		for _, pkg := range packages {
			if pkg = strings.TrimSpace(pkg); pkg != "" {
				s.packages = append(s.packages, pkg)
			}
		}
	}
}

// WithExtension sets the suffix appended to each per-symbol path.
func WithExtension(ext string) Option {
	return func(s *Splitter) {
		s.extension = ext
	}
}

// NewSplitter creates a Splitter for DefaultPackage with DefaultExtension
// unless overridden.
func NewSplitter(opts ...Option) *Splitter {
	s := &Splitter{
		packages:  []string{DefaultPackage},
		extension: DefaultExtension,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Packages returns the configured packages.
func (s *Splitter) Packages() []string {
	return append([]string(nil), s.packages...)
}

// Rewritten returns the number of import statements rewritten so far.
func (s *Splitter) Rewritten() int {
	return int(s.rewritten.Load())
}

// Matches reports whether an import source belongs to one of the configured
// packages, either the package itself or a path below it.
func (s *Splitter) Matches(source string) bool {
	for _, pkg := range s.packages {
		if source == pkg || strings.HasPrefix(source, strings.TrimSuffix(pkg, "/")+"/") {
			return true
		}
	}
	return false
}

// Visit implements patch.Visitor.
func (s *Splitter) Visit(pass *patch.Pass, node, _ *span.Node) error {
	if !node.Is(span.KindImport) {
		return nil
	}

	stmt, ok := s.parse(pass, node)
	if !ok {
		return nil
	}

	terminator := ""
	if pass.Options().Strategy != patch.StrategyFirstMatch && strings.HasSuffix(pass.Read(node), ";") {
		terminator = ";"
	}

	if err := pass.Replace(node, stmt.split(s.extension, terminator)); err != nil {
		return fmt.Errorf("split import from %q: %w", stmt.source, err)
	}
	s.rewritten.Add(1)
	return nil
}

// specifier is one `imported as local` pair.
type specifier struct {
	imported string
	local    string
}

// statement is a matched named import.
type statement struct {
	source     string
	specifiers []specifier
}

func (st statement) split(ext, terminator string) string {
	lines := make([]string, 0, len(st.specifiers))
	for _, spec := range st.specifiers {
		lines = append(lines, fmt.Sprintf(`import %s from "%s/%s%s"%s`, spec.local, st.source, spec.imported, ext, terminator))
	}
	return strings.Join(lines, "\n")
}

// parse extracts a splittable statement. It rejects side-effect imports,
// type-only imports, default or namespace clauses and empty braces.
func (s *Splitter) parse(pass *patch.Pass, node *span.Node) (statement, bool) {
	source := node.Child("source")
	if source == nil || !s.Matches(unquote(pass.Read(source))) {
		return statement{}, false
	}
	if hasKeyword(node, "type") {
		return statement{}, false
	}

	clause := node.FirstChildOfKind(span.KindImportClause)
	if clause == nil {
		return statement{}, false
	}

	var named *span.Node
	for child := clause.FirstChild; child != nil; child = child.Next {
		if !child.Named {
			continue
		}
		if !child.Is(span.KindNamedImports) || named != nil {
			return statement{}, false
		}
		named = child
	}
	if named == nil {
		return statement{}, false
	}

	st := statement{source: unquote(pass.Read(source))}
	for _, spec := range named.ChildrenByKind(span.KindImportSpecifier) {
		if hasKeyword(spec, "type") {
			return statement{}, false
		}
		name := spec.Child("name")
		if name == nil {
			return statement{}, false
		}
		imported := pass.Read(name)
		local := imported
		if alias := spec.Child("alias"); alias != nil {
			local = pass.Read(alias)
		}
		st.specifiers = append(st.specifiers, specifier{imported: imported, local: local})
	}
	if len(st.specifiers) == 0 {
		return statement{}, false
	}
	return st, true
}

// hasKeyword reports whether n has an anonymous child token of the given type.
func hasKeyword(n *span.Node, keyword string) bool {
	for child := n.FirstChild; child != nil; child = child.Next {
		if !child.Named && child.Type == keyword {
			return true
		}
	}
	return false
}

// unquote strips the surrounding quote characters of a string literal.
func unquote(literal string) string {
	if len(literal) >= 2 {
		first, last := literal[0], literal[len(literal)-1]
		if (first == '"' || first == '\'') && first == last {
			return literal[1 : len(literal)-1]
		}
	}
	return literal
}

// Package export builds per-icon ES modules from directories of SVG files.
//
// For every icon set and content directory it writes:
//
//	<out>/<set>/<path>/index.js      named re-exports of every icon
//	<out>/<set>/<path>/index.d.ts    string declarations for TypeScript
//	<out>/<set>/<path>/all.js        one default-exported map of all icons
//	<out>/<set>/<path>/<Name>.js     the cleaned SVG markup of one icon
//	<out>/<set>/<path>/package.json  an ESM package manifest
//
// Per-icon modules are what the import splitter rewrites barrel imports to.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/sveltepatch/internal/logging"
	"github.com/yaklabco/sveltepatch/pkg/config"
	"github.com/yaklabco/sveltepatch/pkg/fsutil"
)

// GeneratedHeader starts every generated index file.
const GeneratedHeader = "// THIS FILE IS AUTO GENERATED\n"

// Exporter writes icon sets below Out, resolving content globs against Root.
type Exporter struct {
	Root string
	Out  string
	Sets []config.IconSet
}

// New creates an Exporter from configuration. Sets default to
// config.DefaultIconSets.
func New(cfg config.ExportConfig) *Exporter {
	return &Exporter{Root: cfg.Root, Out: cfg.Out, Sets: cfg.IconSets()}
}

// DirReport describes one generated directory.
type DirReport struct {
	Path string

	// Icons is the number of icon modules written.
	Icons int

	// Duplicates counts files skipped because their name was already taken.
	Duplicates int
}

// SetReport describes one exported icon set.
type SetReport struct {
	ID   string
	Name string
	Dirs []DirReport
}

// Icons returns the number of icons written for the set.
func (s SetReport) Icons() int {
	n := 0
	for _, d := range s.Dirs {
		n += d.Icons
	}
	return n
}

// Report is the outcome of an export.
type Report struct {
	Sets     []SetReport
	Duration time.Duration
}

// Icons returns the total number of icons written.
func (r *Report) Icons() int {
	n := 0
	for _, s := range r.Sets {
		n += s.Icons()
	}
	return n
}

// Export resets every set directory and regenerates it. Sets are exported
// concurrently; the first failure cancels the rest.
func (e *Exporter) Export(ctx context.Context) (*Report, error) {
	start := time.Now()

	for _, set := range e.Sets {
		if err := fsutil.ResetDir(e.setDir(set)); err != nil {
			return nil, fmt.Errorf("reset %s: %w", set.ID, err)
		}
	}

	report := &Report{Sets: make([]SetReport, len(e.Sets))}
	group, gctx := errgroup.WithContext(ctx)
	for i, set := range e.Sets {
		group.Go(func() error {
			sr, err := e.exportSet(gctx, set)
			if err != nil {
				return fmt.Errorf("export %s: %w", set.ID, err)
			}
			report.Sets[i] = sr
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err //nolint:wrapcheck // Already wrapped per set.
	}

	report.Duration = time.Since(start)
	return report, nil
}

func (e *Exporter) setDir(set config.IconSet) string {
	return filepath.Join(e.Out, set.ID)
}

// iconDir accumulates the generated files of one content directory.
type iconDir struct {
	path  string
	index bytes.Buffer
	types bytes.Buffer
	all   bytes.Buffer
	seen  map[string]bool
	files map[string][]byte
	order []string

	duplicates int
}

func newIconDir(path string) *iconDir {
	d := &iconDir{path: path, seen: make(map[string]bool), files: make(map[string][]byte)}
	d.index.WriteString(GeneratedHeader)
	d.types.WriteString(GeneratedHeader)
	d.all.WriteString(GeneratedHeader + " \nexport default {\n")
	return d
}

func (d *iconDir) add(name, svg string) {
	if d.seen[name] {
		d.duplicates++
		return
	}
	d.seen[name] = true

	literal := templateLiteral(svg)
	fmt.Fprintf(&d.index, "export { default as %s } from './%s.js';\n", name, name)
	fmt.Fprintf(&d.types, "export const %s:string;\n", name)
	fmt.Fprintf(&d.all, " %q : %s,\n", name, literal)

	file := name + ".js"
	d.files[file] = []byte("export default " + literal + ";")
	d.order = append(d.order, file)
}

func (e *Exporter) exportSet(ctx context.Context, set config.IconSet) (SetReport, error) {
	report := SetReport{ID: set.ID, Name: set.Name}
	names := newNamer()

	dirs := make(map[string]*iconDir)
	var order []string
	for _, content := range set.Contents {
		path := filepath.Clean(content.Path)
		dir, ok := dirs[path]
		if !ok {
			dir = newIconDir(path)
			dirs[path] = dir
			order = append(order, path)
		}

		pattern := content.Files
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(e.Root, pattern)
		}
		files, err := filepath.Glob(pattern)
		if err != nil {
			return report, fmt.Errorf("glob %q: %w", content.Files, err)
		}

		for _, file := range files {
			if err := ctx.Err(); err != nil {
				return report, fmt.Errorf("export cancelled: %w", err)
			}

			source, err := os.ReadFile(file)
			if err != nil {
				return report, fmt.Errorf("read icon: %w", err)
			}
			svg, err := CleanSVG(string(source))
			if err != nil {
				return report, fmt.Errorf("%s: %w", file, err)
			}
			dir.add(names.name(file), svg)
		}
	}

	for _, path := range order {
		dir := dirs[path]
		if err := e.writeDir(ctx, set, dir); err != nil {
			return report, err
		}
		report.Dirs = append(report.Dirs, DirReport{Path: path, Icons: len(dir.order), Duplicates: dir.duplicates})
	}

	logging.FromContext(ctx).Info("exported icon set",
		logging.FieldSet, set.ID,
		logging.FieldIcons, report.Icons())

	return report, nil
}

func (e *Exporter) writeDir(ctx context.Context, set config.IconSet, dir *iconDir) error {
	root := filepath.Join(e.setDir(set), dir.path)
	if err := os.MkdirAll(root, fsutil.DefaultDirMode); err != nil {
		return fmt.Errorf("create %s: %w", root, err)
	}

	manifest, err := packageManifest()
	if err != nil {
		return err
	}
	dir.all.WriteString(" }\n")

	outputs := []struct {
		name    string
		content []byte
	}{
		{"index.js", dir.index.Bytes()},
		{"index.d.ts", dir.types.Bytes()},
		{"all.js", dir.all.Bytes()},
		{"package.json", manifest},
	}
	for _, file := range dir.order {
		outputs = append(outputs, struct {
			name    string
			content []byte
		}{file, dir.files[file]})
	}

	for _, out := range outputs {
		path := filepath.Join(root, out.name)
		if err := fsutil.WriteAtomic(ctx, path, out.content, fsutil.DefaultFileMode); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	logging.FromContext(ctx).Debug("wrote icon directory",
		logging.FieldSet, set.ID,
		logging.FieldDir, root,
		logging.FieldIcons, len(dir.order))
	return nil
}

// manifest is the package.json of a generated directory. Field order is the
// output order.
type manifest struct {
	SideEffects bool   `json:"sideEffects"`
	Module      string `json:"module"`
	Main        string `json:"main"`
	Types       string `json:"types"`
	Type        string `json:"type"`
}

func packageManifest() ([]byte, error) {
	data, err := json.MarshalIndent(manifest{
		SideEffects: false,
		Module:      "./index.js",
		Main:        "./index.js",
		Types:       "./index.d.ts",
		Type:        "module",
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode package.json: %w", err)
	}
	return append(data, '\n'), nil
}

// templateLiteral quotes s as a JavaScript template literal.
func templateLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "`", "\\`")
	s = strings.ReplaceAll(s, "${", "\\${")
	return "`" + s + "`"
}

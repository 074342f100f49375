package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/sveltepatch/pkg/fix"
)

// FormatDiff renders a unified diff with a git header, coloring each line
// by kind. displayPath replaces the diff's own path in the headers.
func (s *Styles) FormatDiff(diff *fix.Diff, displayPath string) string {
	if !diff.HasChanges() {
		return ""
	}

	var b strings.Builder
	fmt.Fprintln(&b, s.DiffHeader.Render(fmt.Sprintf("diff --git a/%s b/%s", displayPath, displayPath)))
	fmt.Fprintln(&b, s.DiffRemove.Render("--- a/"+displayPath))
	fmt.Fprintln(&b, s.DiffAdd.Render("+++ b/"+displayPath))

	for _, hunk := range diff.Hunks {
		fmt.Fprintln(&b, s.DiffHunk.Render(fmt.Sprintf("@@ -%d,%d +%d,%d @@",
			hunk.OriginalStart, hunk.OriginalCount, hunk.ModifiedStart, hunk.ModifiedCount)))

		for _, line := range hunk.Lines {
			switch line.Kind {
			case fix.DiffLineAdd:
				fmt.Fprintln(&b, s.DiffAdd.Render("+"+line.Content))
			case fix.DiffLineRemove:
				fmt.Fprintln(&b, s.DiffRemove.Render("-"+line.Content))
			default:
				fmt.Fprintln(&b, s.DiffContext.Render(" "+line.Content))
			}
		}
	}

	return b.String()
}

// FormatDiffStat formats "N files changed, A insertions(+), D deletions(-)".
func (s *Styles) FormatDiffStat(files, additions, deletions int) string {
	parts := []string{fmt.Sprintf("%d %s changed", files, plural(files, wordFile, wordFiles))}
	if additions > 0 {
		parts = append(parts, s.DiffAdd.Render(fmt.Sprintf("%d %s(+)",
			additions, plural(additions, "insertion", "insertions"))))
	}
	if deletions > 0 {
		parts = append(parts, s.DiffRemove.Render(fmt.Sprintf("%d %s(-)",
			deletions, plural(deletions, "deletion", "deletions"))))
	}
	return strings.Join(parts, ", ")
}

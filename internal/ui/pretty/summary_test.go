package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/sveltepatch/internal/ui/pretty"
	"github.com/yaklabco/sveltepatch/pkg/fix"
	"github.com/yaklabco/sveltepatch/pkg/runner"
)

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		name  string
		stats runner.Stats
		want  string
	}{
		{
			name:  "nothing to do",
			stats: runner.Stats{FilesProcessed: 1},
			want:  "Nothing to split (1 file checked)\n",
		},
		{
			name:  "pending",
			stats: runner.Stats{FilesProcessed: 4, FilesChanged: 2, ImportsRewritten: 3},
			want:  "3 imports to split in 2 files (4 files checked)\n",
		},
		{
			name:  "written",
			stats: runner.Stats{FilesProcessed: 4, FilesChanged: 1, FilesWritten: 1, ImportsRewritten: 1},
			want:  "1 import split in 1 file (4 files checked)\n",
		},
		{
			name:  "skipped and failed",
			stats: runner.Stats{FilesProcessed: 2, FilesSkipped: 1, FilesErrored: 2},
			want:  "Nothing to split, 1 skipped, 2 failed (2 files checked)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, styles.FormatSummaryOneLine(tt.stats))
		})
	}
}

func TestFormatDiff(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	diff := fix.GenerateDiff("/abs/App.svelte",
		[]byte("<script>\nimport {A} from \"x\";\n</script>\n"),
		[]byte("<script>\nimport A from \"x/A.js\"\n</script>\n"))

	got := styles.FormatDiff(diff, "App.svelte")
	assert.Equal(t, "diff --git a/App.svelte b/App.svelte\n"+
		"--- a/App.svelte\n"+
		"+++ b/App.svelte\n"+
		"@@ -1,3 +1,3 @@\n"+
		" <script>\n"+
		"-import {A} from \"x\";\n"+
		"+import A from \"x/A.js\"\n"+
		" </script>\n", got)

	assert.Empty(t, styles.FormatDiff(nil, "App.svelte"))
	assert.Equal(t, "1 file changed, 1 insertion(+), 1 deletion(-)", styles.FormatDiffStat(1, 1, 1))
}

package imports_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/sveltepatch/pkg/extract"
	"github.com/yaklabco/sveltepatch/pkg/imports"
	"github.com/yaklabco/sveltepatch/pkg/parser/treesitter"
	"github.com/yaklabco/sveltepatch/pkg/patch"
)

func run(t *testing.T, splitter *imports.Splitter, language, text string, opts patch.Options) string {
	t.Helper()

	region, err := extract.Extract(text, extract.KindScript)
	require.NoError(t, err)
	region.Language = language

	res, err := patch.Patch(context.Background(), region, treesitter.New(), splitter, opts)
	require.NoError(t, err)
	return res.Text
}

func TestSplitter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		language string
		input    string
		want     string
		count    int
	}{
		{
			name:  "named imports",
			input: `import {Home, Close} from "@paulpopa/icons";`,
			want:  "import Home from \"@paulpopa/icons/Home.js\";\nimport Close from \"@paulpopa/icons/Close.js\";",
			count: 1,
		},
		{
			name:  "alias keeps local name",
			input: `import { Close as X } from '@paulpopa/icons'`,
			want:  `import X from "@paulpopa/icons/Close.js"`,
			count: 1,
		},
		{
			name:  "subpath",
			input: `import {Star} from "@paulpopa/icons/fa"`,
			want:  `import Star from "@paulpopa/icons/fa/Star.js"`,
			count: 1,
		},
		{
			name:  "other packages untouched",
			input: `import { onMount } from "svelte"`,
			want:  `import { onMount } from "svelte"`,
		},
		{
			name:  "similar prefix untouched",
			input: `import {A} from "@paulpopa/icons-extra"`,
			want:  `import {A} from "@paulpopa/icons-extra"`,
		},
		{
			name:  "default import untouched",
			input: `import Home from "@paulpopa/icons/Home.js"`,
			want:  `import Home from "@paulpopa/icons/Home.js"`,
		},
		{
			name:  "namespace import untouched",
			input: `import * as icons from "@paulpopa/icons"`,
			want:  `import * as icons from "@paulpopa/icons"`,
		},
		{
			name:  "mixed default and named untouched",
			input: `import all, {Home} from "@paulpopa/icons"`,
			want:  `import all, {Home} from "@paulpopa/icons"`,
		},
		{
			name:  "empty braces untouched",
			input: `import {} from "@paulpopa/icons"`,
			want:  `import {} from "@paulpopa/icons"`,
		},
		{
			name:  "side effect import untouched",
			input: `import "@paulpopa/icons"`,
			want:  `import "@paulpopa/icons"`,
		},
		{
			name:     "type only import untouched",
			language: extract.LanguageTypeScript,
			input:    `import type {IconName} from "@paulpopa/icons"`,
			want:     `import type {IconName} from "@paulpopa/icons"`,
		},
		{
			name:     "typescript named imports",
			language: extract.LanguageTypeScript,
			input:    `import {Home} from "@paulpopa/icons"; let n: number = 1;`,
			want:     `import Home from "@paulpopa/icons/Home.js"; let n: number = 1;`,
			count:    1,
		},
		{
			name: "several statements with code between",
			input: "import {A} from \"@paulpopa/icons\"\n" +
				"const a = 1;\n" +
				"import {B, C} from \"@paulpopa/icons\"\n",
			want: "import A from \"@paulpopa/icons/A.js\"\n" +
				"const a = 1;\n" +
				"import B from \"@paulpopa/icons/B.js\"\nimport C from \"@paulpopa/icons/C.js\"\n",
			count: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			splitter := imports.NewSplitter()
			got := run(t, splitter, tt.language, tt.input, patch.DefaultOptions())
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.count, splitter.Rewritten())
		})
	}
}

func TestSplitter_LegacyOptionsMatch(t *testing.T) {
	t.Parallel()

	input := "import {A, B} from \"@paulpopa/icons\"\nimport {C} from \"@paulpopa/icons\"\n"
	want := "import A from \"@paulpopa/icons/A.js\"\nimport B from \"@paulpopa/icons/B.js\"\n" +
		"import C from \"@paulpopa/icons/C.js\"\n"

	assert.Equal(t, want, run(t, imports.NewSplitter(), "", input, patch.DefaultOptions()))
	assert.Equal(t, want, run(t, imports.NewSplitter(), "", input, patch.LegacyOptions()))
}

func TestSplitter_Terminator(t *testing.T) {
	t.Parallel()

	input := `import {A, B} from "@paulpopa/icons"; let x = 1;`

	got := run(t, imports.NewSplitter(), "", input, patch.DefaultOptions())
	assert.Equal(t, "import A from \"@paulpopa/icons/A.js\";\nimport B from \"@paulpopa/icons/B.js\"; let x = 1;", got)

	// The output parses again and has nothing left to split.
	again := imports.NewSplitter()
	assert.Equal(t, got, run(t, again, "", got, patch.DefaultOptions()))
	assert.Zero(t, again.Rewritten())

	legacy := run(t, imports.NewSplitter(), "", input, patch.LegacyOptions())
	assert.Equal(t, "import A from \"@paulpopa/icons/A.js\"\nimport B from \"@paulpopa/icons/B.js\" let x = 1;", legacy)
}

func TestSplitter_Options(t *testing.T) {
	t.Parallel()

	splitter := imports.NewSplitter(
		imports.WithPackages("pkg", " ", "other/"),
		imports.WithExtension(".mjs"),
	)
	assert.Equal(t, []string{"pkg", "other/"}, splitter.Packages())
	assert.True(t, splitter.Matches("other/x"))
	assert.False(t, splitter.Matches("@paulpopa/icons"))

	got := run(t, splitter, "", `import {A} from "pkg"`, patch.DefaultOptions())
	assert.Equal(t, `import A from "pkg/A.mjs"`, got)
}

package preprocess_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/sveltepatch/pkg/imports"
	"github.com/yaklabco/sveltepatch/pkg/parser/treesitter"
	"github.com/yaklabco/sveltepatch/pkg/patch"
	"github.com/yaklabco/sveltepatch/pkg/preprocess"
	"github.com/yaklabco/sveltepatch/pkg/span"
)

const component = `<script context="module">
	import {Star} from "@paulpopa/icons";
</script>

<script lang="ts">
	import {Home, Close} from "@paulpopa/icons";
	let size: number = 24;
</script>

<Home {size} />

<style>
	div { color: red; }
</style>
`

const patched = `<script context="module">
	import Star from "@paulpopa/icons/Star.js";
</script>

<script lang="ts">
	import Home from "@paulpopa/icons/Home.js";
import Close from "@paulpopa/icons/Close.js";
	let size: number = 24;
</script>

<Home {size} />

<style>
	div { color: red; }
</style>
`

func TestIsVendored(t *testing.T) {
	t.Parallel()

	assert.True(t, preprocess.IsVendored("node_modules/pkg/App.svelte"))
	assert.True(t, preprocess.IsVendored("/src/app/node_modules/x/Icon.svelte"))
	assert.False(t, preprocess.IsVendored("src/my_node_modules_notes/App.svelte"))
	assert.False(t, preprocess.IsVendored("src/App.svelte"))
}

func TestScript(t *testing.T) {
	t.Parallel()

	proc := preprocess.New()
	ctx := context.Background()
	body := `import {A, B} from "@paulpopa/icons";`

	got, err := proc.Script(ctx, "src/App.svelte", body, nil)
	require.NoError(t, err)
	assert.Equal(t, "import A from \"@paulpopa/icons/A.js\";\nimport B from \"@paulpopa/icons/B.js\";", got)

	got, err = proc.Script(ctx, "node_modules/lib/App.svelte", body, nil)
	require.NoError(t, err)
	assert.Equal(t, body, got)

	got, err = proc.Script(ctx, "", body, nil)
	require.NoError(t, err)
	assert.Equal(t, body, got)
}

func TestScript_TypeScriptAttrs(t *testing.T) {
	t.Parallel()

	body := `import {A} from "@paulpopa/icons"; let n: number = 1;`
	got, err := preprocess.New().Script(context.Background(), "App.svelte", body, map[string]string{"lang": "ts"})
	require.NoError(t, err)
	assert.Equal(t, `import A from "@paulpopa/icons/A.js"; let n: number = 1;`, got)
}

func TestScript_SyntaxError(t *testing.T) {
	t.Parallel()

	_, err := preprocess.New().Script(context.Background(), "App.svelte", "import {A from", nil)
	require.Error(t, err)

	var parseErr *patch.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, err.Error(), "App.svelte")
}

func TestDocument(t *testing.T) {
	t.Parallel()

	res, err := preprocess.New().Document(context.Background(), "src/App.svelte", component)
	require.NoError(t, err)

	assert.Equal(t, patched, res.Text)
	assert.True(t, res.Changed())
	require.Len(t, res.Blocks, 2)
	assert.True(t, res.Blocks[0].Block.IsModule())
	assert.Equal(t, 2, res.EditCount())
}

func TestDocument_Unchanged(t *testing.T) {
	t.Parallel()

	doc := "<script>\n\timport { onMount } from \"svelte\";\n</script>\n<p>hi</p>\n"
	res, err := preprocess.New().Document(context.Background(), "App.svelte", doc)
	require.NoError(t, err)
	assert.Equal(t, doc, res.Text)
	assert.False(t, res.Changed())
	assert.Zero(t, res.EditCount())
}

func TestDocument_Vendored(t *testing.T) {
	t.Parallel()

	res, err := preprocess.New().Document(context.Background(), "node_modules/x/App.svelte", component)
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Equal(t, component, res.Text)
}

func TestDocument_Idempotent(t *testing.T) {
	t.Parallel()

	proc := preprocess.New()
	first, err := proc.Document(context.Background(), "App.svelte", component)
	require.NoError(t, err)

	second, err := proc.Document(context.Background(), "App.svelte", first.Text)
	require.NoError(t, err)
	assert.Equal(t, first.Text, second.Text)
	assert.False(t, second.Changed())
}

func TestDocument_RerunOnOwnOutput(t *testing.T) {
	t.Parallel()

	doc := "<script>\nimport {A, B} from \"@paulpopa/icons\"; let x = 1;\n</script>\n"
	proc := preprocess.New()

	first, err := proc.Document(context.Background(), "App.svelte", doc)
	require.NoError(t, err)
	assert.Equal(t,
		"<script>\nimport A from \"@paulpopa/icons/A.js\";\nimport B from \"@paulpopa/icons/B.js\"; let x = 1;\n</script>\n",
		first.Text)

	second, err := proc.Document(context.Background(), "App.svelte", first.Text)
	require.NoError(t, err)
	assert.Equal(t, first.Text, second.Text)
	assert.False(t, second.Changed())
}

func TestDocument_LegacyOptions(t *testing.T) {
	t.Parallel()

	proc := preprocess.New(preprocess.WithPatchOptions(patch.LegacyOptions()))
	res, err := proc.Document(context.Background(), "App.svelte", component)
	require.NoError(t, err)
	assert.Equal(t, strings.ReplaceAll(patched, `.js";`, `.js"`), res.Text)
}

func TestDocument_CustomPackage(t *testing.T) {
	t.Parallel()

	proc := preprocess.New(preprocess.WithVisitor(
		imports.NewSplitter(imports.WithPackages("my-icons"), imports.WithExtension(".svelte")),
	))
	res, err := proc.Document(context.Background(), "App.svelte", `<script>import {Cog} from "my-icons"</script>`)
	require.NoError(t, err)
	assert.Equal(t, `<script>import Cog from "my-icons/Cog.svelte"</script>`, res.Text)
}

func TestDocument_ErrorsCarryPosition(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	proc := preprocess.New(
		preprocess.WithParser(treesitter.New()),
		preprocess.WithVisitor(patch.VisitorFunc(func(*patch.Pass, *span.Node, *span.Node) error {
			return boom
		})),
	)

	_, err := proc.Document(context.Background(), "App.svelte", "<p/>\n<script>let a = 1</script>")
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "App.svelte:2:9")

	_, err = proc.Document(context.Background(), "App.svelte", "<script>let a")
	require.Error(t, err)
	assert.NotErrorIs(t, err, boom)
}

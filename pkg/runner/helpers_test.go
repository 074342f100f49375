package runner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/sveltepatch/pkg/config"
	"github.com/yaklabco/sveltepatch/pkg/runner"
)

const component = `<script>
	import {Home, Close} from "@paulpopa/icons";
	export let size = 24;
</script>

<Home {size} />
`

const patched = `<script>
	import Home from "@paulpopa/icons/Home.js";
import Close from "@paulpopa/icons/Close.js";
	export let size = 24;
</script>

<Home {size} />
`

const plain = `<script>
	import Button from "./Button.svelte";
</script>

<Button />
`

const broken = "<script>import {A from</script>\n"

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func newRunner(t *testing.T) *runner.Runner {
	t.Helper()

	proc, err := runner.ProcessorFromConfig(config.NewConfig())
	require.NoError(t, err)
	return runner.New(runner.NewPipeline(proc))
}

package config

// Template returns the commented starter configuration written by
// `sveltepatch init`.
func Template() []byte {
	return []byte(`# sveltepatch configuration

# Import sources whose barrel imports are split into per-icon imports.
packages:
  - "@paulpopa/icons"

# Suffix appended to every per-icon module path.
extension: ".js"

# How rewrites locate their text:
#   splice       rewrite the exact source range of the import (default)
#   first-match  rewrite the first identical text in the script (legacy)
strategy: splice

# Whether nodes inside a rewritten import are still visited: skip or descend.
subtrees: skip

# Component file extensions to process.
extensions:
  - ".svelte"

# Glob patterns to ignore. node_modules is always skipped.
# ignore:
#   - "build/**"

# Keep a .sveltepatch.bak copy of each file before rewriting it.
backups:
  enabled: false

# Icon exporter. Globs are relative to root; sets default to the
# @paulpopa/icons sources.
export:
  root: "."
  out: "."
`)
}

package logging

// Structured logging keys.
const (
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Patching.
	FieldKind     = "kind"
	FieldLanguage = "language"
	FieldBlock    = "block"
	FieldEdits    = "edits"
	FieldImports  = "imports"
	FieldStrategy = "strategy"
	FieldSubtrees = "subtrees"
	FieldPackages = "packages"
	FieldWrite    = "write"
	FieldDryRun   = "dry_run"
	FieldJobs     = "jobs"
	FieldEvent    = "event"

	// Run statistics.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesModified   = "files_modified"
	FieldFilesFailed     = "files_failed"
	FieldDuration        = "duration"

	// Export.
	FieldSet   = "set"
	FieldDir   = "dir"
	FieldIcons = "icons"

	// Version.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)

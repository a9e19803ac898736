// Package config holds configuration defaults shared between the CLI and
// the macro layer.
package config

// Default configuration values.
const (
	DefaultMacrosDir = "macros"

	// DefaultValidTo is the end-of-validity sentinel for SCD Type 2
	// fragments: rows with no successor in their partition carry this value
	// in _row_valid_to. Overridable per project and per environment.
	DefaultValidTo = "9999-12-31 23:59:59"

	DefaultEnv    = "dev"
	DefaultOutput = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// Package cli defines the Cobra command for the agent-memory CLI. The root
// command takes an optional target directory and delegates the work to the
// scaffold package; this package only handles flag parsing, configuration
// binding, output formatting and exit codes.
package cli

package cli

// Exit codes for the agent-memory CLI.
const (
	// ExitSuccess indicates the run completed, even if some templates were missing.
	ExitSuccess = 0

	// ExitFailure indicates a fatal error such as a missing target directory.
	ExitFailure = 1

	// ExitInvalidArguments indicates unknown flags or too many arguments.
	ExitInvalidArguments = 2
)

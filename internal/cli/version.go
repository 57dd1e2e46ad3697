package cli

import "fmt"

// versionString renders the ldflags build info for --version.
func versionString() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", buildVersion, buildCommit, buildDate)
}

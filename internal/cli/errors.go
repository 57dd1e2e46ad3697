package cli

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/agentx-labs/agent-memory/internal/branding"
	"github.com/agentx-labs/agent-memory/internal/scaffold"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// usageError marks errors caused by bad flags or arguments.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

// exitCode maps an error returned by the command tree to an exit status.
func exitCode(err error) int {
	var ue *usageError
	if errors.As(err, &ue) {
		return ExitInvalidArguments
	}
	return ExitFailure
}

// remediation returns a hint for errors the user can fix directly.
func remediation(err error) string {
	var (
		ue       *usageError
		notFound *scaffold.TargetNotFoundError
	)
	switch {
	case errors.As(err, &ue):
		return "Run '" + branding.CLIName() + " --help' for usage."
	case errors.As(err, &notFound) && notFound.NotDir:
		return "Pass the project directory, not a file inside it."
	case errors.As(err, &notFound):
		return "Create the directory first or pass an existing project path."
	}
	return ""
}

// formatError renders err for the terminal, with colors when enabled.
func formatError(err error, colored bool) string {
	label := color.New(color.FgRed, color.Bold)
	hint := color.New(color.FgCyan)
	if colored {
		label.EnableColor()
		hint.EnableColor()
	} else {
		label.DisableColor()
		hint.DisableColor()
	}

	var sb strings.Builder
	sb.WriteString(label.Sprint("Error:"))
	sb.WriteString(" ")
	sb.WriteString(err.Error())
	sb.WriteString("\n")
	if r := remediation(err); r != "" {
		sb.WriteString(hint.Sprint(r))
		sb.WriteString("\n")
	}
	return sb.String()
}

// useColor reports whether w is a terminal that accepts ANSI colors.
func useColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

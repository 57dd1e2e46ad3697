package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agentx-labs/agent-memory/internal/branding"
	"github.com/agentx-labs/agent-memory/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

const rootLong = `%s scaffolds layered memory documents for AI coding agents into a project.

It creates .agent-memory/ under the target directory (the current directory
when omitted) and fills it from the templates bundled with the skill:

  .agent-memory/
  ├── README.md
  ├── 01-system/    system layer: index, context, architecture, tech stack,
  │                 data model, conventions
  ├── 02-modules/   module layer: one document per business domain
  └── 03-deep/      deep layer: data flows, lifecycles, interactions

Existing template files are overwritten. A missing template is reported and
skipped; the rest of the tree is still created.`

const rootExample = `  # Scaffold into the current directory
  agent-memory

  # Scaffold into another project
  agent-memory ~/src/my-service

  # Use templates from a checkout instead of the installed skill
  agent-memory --skill-dir ./agent-memory-skill ~/src/my-service`

type rootOptions struct {
	skillDir string
	noColor  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           branding.CLIName() + " [target-dir]",
		Short:         branding.Description(),
		Long:          fmt.Sprintf(rootLong, branding.DisplayName()),
		Example:       rootExample,
		Args:          maxArgs(1),
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) == 1 {
				target = args[0]
			}
			return runInit(cmd.OutOrStdout(), target)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetVersionTemplate("{{.Name}} version {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := cmd.Flags()
	flags.StringVar(&opts.skillDir, "skill-dir", "", "Directory holding the bundled assets/ (default: next to the binary)")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	return cmd
}

// maxArgs rejects more than n positional arguments as a usage error.
func maxArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			return &usageError{err: fmt.Errorf("accepts at most %d target directory, received %d: %s",
				n, len(args), strings.Join(args, " "))}
		}
		return nil
	}
}

// loadConfig reads ~/.agentmem/config.yaml and the environment, then binds
// the command's flags over them.
func loadConfig(cmd *cobra.Command) error {
	config.Reset()
	if err := config.Load(); err != nil {
		return err
	}
	if err := config.BindFlag(config.KeySkillDir, cmd.Flags().Lookup("skill-dir")); err != nil {
		return err
	}
	return config.BindFlag(config.KeyNoColor, cmd.Flags().Lookup("no-color"))
}

// Run executes the command tree with args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprint(stderr, formatError(err, useColor(stderr)))
		return exitCode(err)
	}
	return ExitSuccess
}

// Execute runs the root command against the process arguments with build
// info injected via ldflags.
func Execute(version, commit, date string) int {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

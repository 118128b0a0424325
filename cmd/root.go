package cmd

import (
	pkgversion "github.com/jsprint/jsprint/internal/version"
	"github.com/spf13/cobra"
)

// version is set by ldflags during release builds.
// When empty (default), falls back to the source constant in internal/version.
var version = ""

func getVersion() string {
	if version != "" {
		return version
	}
	return pkgversion.Version
}

// rootOptions holds the global command-line options
type rootOptions struct {
	configPath string
	debug      bool
	noColor    bool
}

func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "jsprint [command [args...]]",
		Short: "Interactive shell for a Jira agile board",
		Long: `jsprint connects to a Jira agile board and opens a shell for working
on the current sprint with short commands.

Shell commands:
  sp [id]              List the current (or given) sprint issues by assignee
  sps                  List the sprints around the active one and future sprints
  rp                   List the current sprint issues by assignee in rank order
  rw                   List resolved and on-review issues with their review age
  lcount               Count the current sprint issues per label
  u [id]               Use the given sprint, or the active one
  a <number>...        Move issues into the current sprint
  as <user> <number>...  Assign issues to a user
  bk <number>...       Move issues to the backlog
  h, help              List commands
  q, quit              Leave the shell

Settings are read from settings.json, .jsprint.yml, .jsprint.yaml or
.jsprint.toml in the current directory or a parent. Run 'jsprint init'
to create one.

Examples:
  # Open the shell
  jsprint

  # Run a single command and exit
  jsprint sp
  jsprint -- as jdoe 12 13

  # Use an explicit settings file
  jsprint --config ~/work/settings.json`,
		Version:      getVersion(),
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, args, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Settings file (default: search the current directory and its parents)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Log tracker requests to stderr")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(newInitCommand())

	return cmd
}

func Execute() error {
	return NewRootCommand().Execute()
}

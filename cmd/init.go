package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jsprint/jsprint/internal/defaults"
	"github.com/spf13/cobra"
)

// initOptions holds the command-line options for init
type initOptions struct {
	force bool
}

func newInitCommand() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a settings file in the current directory",
		Long: `Create a .jsprint.yml settings template in the current directory.

Fill in the Jira URL, credentials, project and board id, then run 'jsprint'.
An existing file is left untouched unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}
			return runInit(cmd.OutOrStdout(), cwd, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing settings file")

	return cmd
}

// runInit writes the settings template into dir
func runInit(out io.Writer, dir string, opts *initOptions) error {
	path := filepath.Join(dir, defaults.FileName)

	if _, err := os.Stat(path); err == nil && !opts.force {
		return fmt.Errorf("%s already exists, use --force to overwrite it", path)
	}

	template, err := defaults.Load()
	if err != nil {
		return fmt.Errorf("invalid settings template: %w", err)
	}

	// the template may hold a password once edited
	if err := os.WriteFile(path, defaults.Template(), 0600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	fmt.Fprintf(out, "Created %s for board %d of project %s\n", path, template.JiraBoardID, template.JiraProject)
	fmt.Fprintln(out, "Edit it with your Jira connection, then run 'jsprint'.")
	return nil
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/jsprint/jsprint/internal/api"
	"github.com/jsprint/jsprint/internal/commands"
	"github.com/jsprint/jsprint/internal/config"
	"github.com/jsprint/jsprint/internal/shell"
	"github.com/jsprint/jsprint/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ErrPasswordRequired is returned when no password is configured and stdin
// is not a terminal to prompt on
var ErrPasswordRequired = errors.New("jira_password is not set and stdin is not a terminal")

func runShell(cmd *cobra.Command, args []string, opts *rootOptions) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.debug)
	printer := newPrinter(cmd, opts.noColor)
	out := printer.Out()

	fmt.Fprint(out, "Loading settings...")
	settings, err := loadSettings(opts.configPath)
	if err != nil {
		fmt.Fprintln(out)
		return err
	}
	fmt.Fprintln(out, "done!")

	if settings.JiraPassword == "" {
		password, err := promptPassword(out, settings.JiraUsername)
		if err != nil {
			return err
		}
		settings.JiraPassword = password
	}

	client := api.NewClient(settings.JiraURL, settings.JiraUsername, settings.JiraPassword, api.WithLogger(logger))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	var lines shell.LineReader
	if len(args) == 0 {
		if useTerminal(cmd.InOrStdin(), printer) {
			terminal := shell.NewTerminal()
			defer terminal.Close()
			lines = terminal
		} else {
			lines = shell.NewReader(ctx, cmd.InOrStdin(), out)
		}
	}

	return runShellWithDeps(ctx, args, settings, client, printer, lines, logger)
}

// useTerminal reports whether line editing can take over stdin and stdout
func useTerminal(in io.Reader, printer *ui.Printer) bool {
	return in == os.Stdin && printer.IsTTY() && term.IsTerminal(int(os.Stdin.Fd()))
}

// runShellWithDeps is the testable implementation of runShell. With args it
// runs them as a single command line instead of reading lines.
func runShellWithDeps(ctx context.Context, args []string, settings *config.Settings, tracker shell.Tracker, printer *ui.Printer, lines shell.LineReader, logger *slog.Logger) error {
	out := printer.Out()
	session := shell.NewSession(settings, tracker, printer)

	fmt.Fprint(out, "Connecting to Jira...")
	if err := session.Connect(ctx); err != nil {
		fmt.Fprintln(out)
		return err
	}
	fmt.Fprintln(out, "done!")

	active, err := session.ActiveSprint(ctx)
	if err != nil {
		return err
	}
	session.UseSprint(active)
	logger.Debug("session ready", "board", session.Board.Name, "sprint", session.SprintName())

	reg := shell.NewRegistry()
	commands.Register(reg)
	sh := shell.New(reg, session, lines, logger)

	if len(args) > 0 {
		sh.Dispatch(ctx, strings.Join(args, " "))
		return nil
	}
	return sh.Run(ctx)
}

// loadSettings loads the settings file at path, or the one found from the
// working directory, then applies environment overrides and validates.
func loadSettings(path string) (*config.Settings, error) {
	var settings *config.Settings
	var err error
	if path != "" {
		settings, err = config.Load(path)
	} else {
		var cwd string
		if cwd, err = os.Getwd(); err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		settings, err = config.LoadFromDirectory(cwd)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w\nRun 'jsprint init' to create a settings file", err)
	}

	if err := settings.ApplyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return settings, nil
}

// promptPassword reads the Jira password from the terminal without echo
func promptPassword(out io.Writer, username string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrPasswordRequired
	}

	fmt.Fprintf(out, "Password for %s: ", username)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

// newLogger logs warnings to w, or everything with debug
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newPrinter detects the terminal when writing to stdout and prints plain
// text to any other writer
func newPrinter(cmd *cobra.Command, noColor bool) *ui.Printer {
	if out := cmd.OutOrStdout(); out != os.Stdout {
		return ui.New(out, false, false, 0)
	}
	return ui.FromEnv(noColor)
}

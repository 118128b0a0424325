package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

var (
	quitTokens = map[string]bool{"q": true, "quit": true}
	helpTokens = map[string]bool{"h": true, "help": true}
)

// Shell reads command lines and dispatches them to registered handlers,
// one at a time, until quit, end of input or interruption.
type Shell struct {
	registry *Registry
	session  *Session
	lines    LineReader
	out      io.Writer
	logger   *slog.Logger
}

// New creates a shell reading from lines and writing to the session printer
func New(registry *Registry, session *Session, lines LineReader, logger *slog.Logger) *Shell {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Shell{
		registry: registry,
		session:  session,
		lines:    lines,
		out:      session.Out(),
		logger:   logger,
	}
}

// Prompt is the prompt shown before each line
func (sh *Shell) Prompt() string {
	return fmt.Sprintf("JSprint [%s] >>> ", sh.session.SprintName())
}

// Run loops over input lines. It returns nil on quit, end of input,
// interruption or cancellation of ctx, and an error only when reading
// input fails.
func (sh *Shell) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		line, err := sh.lines.Prompt(sh.Prompt())
		switch {
		case errors.Is(err, io.EOF), errors.Is(err, ErrInterrupted):
			fmt.Fprintln(sh.out)
			return nil
		case err != nil:
			return fmt.Errorf("failed to read input: %w", err)
		}

		if quitTokens[strings.TrimSpace(line)] {
			return nil
		}

		sh.record(line)
		sh.Dispatch(ctx, line)
	}
	return nil
}

// record adds non-blank lines to the reader's history, if it keeps one
func (sh *Shell) record(line string) {
	h, ok := sh.lines.(historyAppender)
	if !ok || strings.TrimSpace(line) == "" {
		return
	}
	h.AppendHistory(line)
}

// Dispatch runs one command line. Errors and panics raised by the handler
// are reported and never propagate.
func (sh *Shell) Dispatch(ctx context.Context, line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	name := fields[0]

	if helpTokens[name] {
		sh.printHelp()
		return
	}

	handler, ok := sh.registry.Resolve(name)
	if !ok {
		fmt.Fprintf(sh.out, "Unknown command %s\n", name)
		return
	}

	sh.logger.Debug("dispatching command", "command", name, "line", line)
	if err := sh.invoke(ctx, name, handler, line); err != nil {
		sh.report(name, err)
	}
}

func (sh *Shell) invoke(ctx context.Context, name string, handler Handler, line string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			sh.logger.Error("command panicked", "command", name, "panic", r)
			err = fmt.Errorf("command %s failed: %v", name, r)
		}
	}()
	return handler(ctx, sh.session, line)
}

func (sh *Shell) report(name string, err error) {
	var usage *UsageError
	if errors.As(err, &usage) || errors.Is(err, ErrNoSprint) {
		fmt.Fprintln(sh.out, err.Error())
		return
	}
	sh.logger.Debug("command failed", "command", name, "error", err)
	fmt.Fprintln(sh.out, sh.session.Printer.Fail("Error: "+err.Error()))
}

func (sh *Shell) printHelp() {
	for _, name := range sh.registry.Names() {
		fmt.Fprintln(sh.out, name)
	}
}

// Package commands implements the shell commands. Each handler parses its
// own arguments, talks to the tracker through the session and prints rows.
package commands

import (
	"strconv"
	"strings"

	"github.com/jsprint/jsprint/internal/config"
	"github.com/jsprint/jsprint/internal/shell"
)

// Register adds every command, and its long aliases, to reg
func Register(reg *shell.Registry) {
	reg.Register("sp", Sprint)
	reg.Register("sprint", Sprint)
	reg.Register("sps", Sprints)
	reg.Register("sprints", Sprints)
	reg.Register("rp", Report)
	reg.Register("rw", Reviews)
	reg.Register("bk", Backlog)
	reg.Register("lcount", LabelsCount)
	reg.Register("u", UseSprint)
	reg.Register("a", AddToSprint)
	reg.Register("add", AddToSprint)
	reg.Register("as", Assign)
}

// arguments returns the whitespace separated tokens after the command name
func arguments(line string) []string {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil
	}
	return fields[1:]
}

// issueKeys expands issue numbers into tracker keys
func issueKeys(settings *config.Settings, args []string) ([]string, error) {
	keys := make([]string, 0, len(args))
	for _, arg := range args {
		n, err := parseNumber(arg)
		if err != nil {
			return nil, shell.Usagef("Issue number %s is not a number", arg)
		}
		keys = append(keys, settings.IssueKey(n))
	}
	return keys, nil
}

// sprintID parses a sprint id argument
func sprintID(arg string) (int, error) {
	id, err := parseNumber(arg)
	if err != nil {
		return 0, shell.Usagef("Sprint ID %s is not a number", arg)
	}
	return id, nil
}

// parseNumber accepts unsigned 32-bit decimal numbers, zero included
func parseNumber(arg string) (int, error) {
	n, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

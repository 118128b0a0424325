package commands

import (
	"context"
	"fmt"

	"github.com/jsprint/jsprint/internal/shell"
)

// Assign assigns issues, by number, to a user: as <assignee> <number>...
// Issues are assigned in order and the first failure stops the command.
func Assign(ctx context.Context, s *shell.Session, line string) error {
	args := arguments(line)
	switch len(args) {
	case 0:
		return shell.Usagef("Assignee and at least one issue number is necessary")
	case 1:
		return shell.Usagef("At least one issue number is necessary")
	}

	assignee := args[0]
	keys, err := issueKeys(s.Settings, args[1:])
	if err != nil {
		return err
	}

	out := s.Out()
	for _, key := range keys {
		if err := s.Tracker.AssignIssue(ctx, key, assignee); err != nil {
			return fmt.Errorf("failed to assign %s to %s: %w", key, assignee, err)
		}
		fmt.Fprintf(out, "Assigned %s to %s\n", key, assignee)
	}
	return nil
}

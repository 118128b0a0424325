package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/jsprint/jsprint/internal/shell"
)

// AddToSprint moves issues, by number, into the current sprint
func AddToSprint(ctx context.Context, s *shell.Session, line string) error {
	args := arguments(line)
	if len(args) == 0 {
		return shell.Usagef("At least one issue number is needed")
	}
	keys, err := issueKeys(s.Settings, args)
	if err != nil {
		return err
	}

	sprint, err := s.RequireSprint()
	if err != nil {
		return err
	}

	if err := s.Tracker.MoveIssuesToSprint(ctx, sprint.ID, keys); err != nil {
		return fmt.Errorf("failed to move issues to sprint %s: %w", sprint.Name, err)
	}

	fmt.Fprintf(s.Out(), "Moved %s to sprint %s\n", strings.Join(keys, ", "), sprint.Name)
	return nil
}

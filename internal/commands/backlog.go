package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/jsprint/jsprint/internal/shell"
)

// Backlog moves issues, by number, to the backlog
func Backlog(ctx context.Context, s *shell.Session, line string) error {
	args := arguments(line)
	if len(args) == 0 {
		return shell.Usagef("At least one issue number is needed")
	}
	keys, err := issueKeys(s.Settings, args)
	if err != nil {
		return err
	}

	if err := s.Tracker.MoveIssuesToBacklog(ctx, keys); err != nil {
		return fmt.Errorf("failed to move issues to backlog: %w", err)
	}

	fmt.Fprintf(s.Out(), "Moved %s to backlog\n", strings.Join(keys, ", "))
	return nil
}

package commands

import (
	"context"
	"fmt"

	"github.com/jsprint/jsprint/internal/shell"
)

// UseSprint sets the current sprint to the given id, or to the active
// sprint without argument. Lookup failures leave the current sprint as is.
func UseSprint(ctx context.Context, s *shell.Session, line string) error {
	args := arguments(line)
	if len(args) > 1 {
		return shell.Usagef("Pass only one sprint ID")
	}

	out := s.Out()
	if len(args) == 0 {
		sprint, err := s.ActiveSprint(ctx)
		if err != nil {
			return err
		}
		if sprint == nil {
			fmt.Fprintln(out, "No active sprint found")
			return nil
		}
		s.UseSprint(sprint)
		fmt.Fprintf(out, "Using sprint %s\n", sprint.Name)
		return nil
	}

	sprint, err := lookupSprint(ctx, s, args[0])
	if err != nil || sprint == nil {
		return err
	}
	s.UseSprint(sprint)
	fmt.Fprintf(out, "Using sprint %s\n", sprint.Name)
	return nil
}

package commands

import (
	"context"
	"fmt"

	"github.com/jsprint/jsprint/internal/agile"
	"github.com/jsprint/jsprint/internal/shell"
)

// Sprints prints the sprints around the active one followed by the future
// sprints. The active sprint is marked with a star.
func Sprints(ctx context.Context, s *shell.Session, line string) error {
	sprints, err := s.Tracker.ListSprints(ctx, s.Board.ID, "")
	if err != nil {
		return fmt.Errorf("failed to list sprints: %w", err)
	}

	out := s.Out()
	if len(sprints) == 0 {
		fmt.Fprintln(out, "No sprints found")
		return nil
	}

	idPadding := sprints.IDPadding()
	for _, sprint := range sprints.Window(agile.WindowRadius) {
		marker := " "
		if sprint.IsActive() {
			marker = "*"
		}
		fmt.Fprintf(out, "%s (%s) %s\n", marker, s.Printer.Bold(fmt.Sprintf("%*d", idPadding, sprint.ID)), sprint.Name)
	}
	return nil
}

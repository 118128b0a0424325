package commands

import (
	"context"
	"fmt"

	"github.com/jsprint/jsprint/internal/agile"
	"github.com/jsprint/jsprint/internal/shell"
	"github.com/jsprint/jsprint/internal/ui"
)

// Sprint prints the issues of the current sprint, or of the sprint given
// as argument, grouped by assignee and ordered by id.
func Sprint(ctx context.Context, s *shell.Session, line string) error {
	sprint, err := targetSprint(ctx, s, arguments(line))
	if err != nil || sprint == nil {
		return err
	}

	out := s.Out()
	fmt.Fprintf(out, "Displaying sprint %s\n", sprint.Name)

	issues, err := s.SprintIssues(ctx, sprint)
	if err != nil {
		return err
	}
	if len(issues) == 0 {
		fmt.Fprintf(out, "No issues found for sprint %s\n", sprint.Name)
		return nil
	}

	keyPadding := issues.KeyPadding()
	permalinkPadding := issues.PermalinkPadding()
	statusPadding := issues.StatusPadding()

	p := s.Printer
	for _, group := range issues.GroupByAssignee() {
		fmt.Fprintln(out)
		fmt.Fprintln(out, p.Bold(group.Assignee))

		group.Issues.SortByID()
		for _, issue := range group.Issues {
			fmt.Fprintf(out, "%s - %s (%s) %s\n",
				p.Status(issue, statusPadding),
				p.Bold(ui.Pad(issue.Key, keyPadding)),
				ui.Pad(issue.Permalink, permalinkPadding),
				p.Bold(issue.DisplaySummary()),
			)
		}
	}
	return nil
}

// targetSprint resolves the optional sprint id argument, defaulting to the
// current sprint. A nil sprint without error means a message was printed.
func targetSprint(ctx context.Context, s *shell.Session, args []string) (*agile.Sprint, error) {
	switch len(args) {
	case 0:
		return s.RequireSprint()
	case 1:
		return lookupSprint(ctx, s, args[0])
	default:
		return nil, shell.Usagef("Pass only one sprint ID")
	}
}

// lookupSprint fetches a sprint by id argument. An unknown id prints a
// message and returns nil.
func lookupSprint(ctx context.Context, s *shell.Session, arg string) (*agile.Sprint, error) {
	id, err := sprintID(arg)
	if err != nil {
		return nil, err
	}
	sprint, err := s.Tracker.GetSprint(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get sprint %d: %w", id, err)
	}
	if sprint == nil {
		fmt.Fprintf(s.Out(), "No sprint found with ID %d\n", id)
	}
	return sprint, nil
}

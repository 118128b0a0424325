package commands

import (
	"context"
	"fmt"

	"github.com/jsprint/jsprint/internal/shell"
	"github.com/jsprint/jsprint/internal/ui"
)

// Report prints the current sprint issues grouped by assignee and ordered
// by the board rank field.
func Report(ctx context.Context, s *shell.Session, line string) error {
	sprint, err := s.RequireSprint()
	if err != nil {
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

	permalinkPadding := issues.PermalinkPadding()
	statusPadding := issues.StatusPadding()

	p := s.Printer
	for _, group := range issues.GroupByAssignee() {
		fmt.Fprintln(out)
		fmt.Fprintln(out, p.Bold(group.Assignee))

		group.Issues.SortByField(s.Settings.RankField)
		for _, issue := range group.Issues {
			fmt.Fprintf(out, "- %s (%s) %s\n",
				ui.Pad(issue.Permalink, permalinkPadding),
				p.Status(issue, statusPadding),
				p.Bold(issue.DisplaySummary()),
			)
		}
	}
	return nil
}

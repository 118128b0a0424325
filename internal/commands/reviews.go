package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jsprint/jsprint/internal/shell"
	"github.com/jsprint/jsprint/internal/ui"
)

// unknownDays is printed for issues without a resolution date
const unknownDays = "x"

// Reviews prints the resolved and on-review issues of the current sprint,
// oldest update first, with how long each has waited for review.
func Reviews(ctx context.Context, s *shell.Session, line string) error {
	sprint, err := s.RequireSprint()
	if err != nil {
		return err
	}

	out := s.Out()
	fmt.Fprintf(out, "On Review in sprint %s\n", sprint.Name)

	issues, err := s.ReviewIssues(ctx, sprint)
	if err != nil {
		return err
	}
	if len(issues) == 0 {
		fmt.Fprintf(out, "No issues found for sprint %s\n", sprint.Name)
		return nil
	}

	permalinkPadding := issues.PermalinkPadding()
	now := s.Now()

	p := s.Printer
	for _, group := range issues.GroupByAssignee() {
		fmt.Fprintln(out)
		fmt.Fprintln(out, p.Bold(group.Assignee))

		group.Issues.SortByUpdated()
		for _, issue := range group.Issues {
			days := unknownDays
			if d, ok := issue.DaysOnReview(now); ok {
				days = strconv.Itoa(d)
			}

			fmt.Fprintf(out, "%s (%2sd) - %s %s\n",
				p.Review(issue.ReviewLevel(now)),
				days,
				ui.Pad(issue.Permalink, permalinkPadding),
				p.Bold(issue.DisplaySummary()),
			)
		}
	}
	return nil
}

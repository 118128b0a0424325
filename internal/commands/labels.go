package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jsprint/jsprint/internal/agile"
	"github.com/jsprint/jsprint/internal/shell"
)

// LabelsCount prints how many current sprint issues carry each label,
// using the configured display names.
func LabelsCount(ctx context.Context, s *shell.Session, line string) error {
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

	counts := agile.LabelHistogram(issues, s.Settings.LabelsMapping)
	if len(counts) == 0 {
		fmt.Fprintf(out, "No labels found for sprint %s\n", sprint.Name)
		return nil
	}

	table := s.Printer.Table()
	table.AddHeader([]string{"LABEL", "ISSUES"})
	for _, c := range counts {
		table.AddField(c.Label)
		table.AddField(strconv.Itoa(c.Count))
		table.EndRow()
	}
	return table.Render()
}

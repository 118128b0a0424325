package agile

import (
	"fmt"
	"sort"
)

// LabelCount is the number of issue labels resolving to one display label
type LabelCount struct {
	Label string
	Count int
}

// DisplayLabel resolves a raw label through mapping, falling back to "<raw>"
func DisplayLabel(label string, mapping map[string]string) string {
	if display, ok := mapping[label]; ok {
		return display
	}
	return fmt.Sprintf("<%s>", label)
}

// LabelHistogram counts every label of every issue by its display label.
// The result is sorted by display label.
func LabelHistogram(issues Issues, mapping map[string]string) []LabelCount {
	counts := make(map[string]int)
	for _, issue := range issues {
		for _, label := range issue.Labels {
			counts[DisplayLabel(label, mapping)]++
		}
	}

	out := make([]LabelCount, 0, len(counts))
	for label, n := range counts {
		out = append(out, LabelCount{Label: label, Count: n})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Label < out[b].Label })
	return out
}

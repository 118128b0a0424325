package agile

import (
	"sort"
)

const (
	// Unassigned is the group name for issues without an assignee
	Unassigned = "<unassigned>"
	// NoSummary is shown for issues without a summary
	NoSummary = "<no summary>"
	// NoStatus is shown for issues without a status
	NoStatus = "<no status>"
)

// StatusCategory drives how a status is rendered. It carries no workflow meaning.
type StatusCategory int

const (
	CategoryDefault StatusCategory = iota
	CategoryBacklog
	CategoryInProgress
	CategoryInReview
	CategoryDone
)

// Issues is an ordered issue collection
type Issues []Issue

// AssigneeGroup is the issues of one assignee, in input order
type AssigneeGroup struct {
	Assignee string
	Issues   Issues
}

// DisplaySummary returns the summary, or NoSummary when there is none
func (i Issue) DisplaySummary() string {
	if i.Summary == "" {
		return NoSummary
	}
	return i.Summary
}

// DisplayStatus returns the status name, or NoStatus when there is none
func (i Issue) DisplayStatus() string {
	if i.Status == "" {
		return NoStatus
	}
	return i.Status
}

// StatusCategory classifies the issue status for rendering
func (i Issue) StatusCategory() StatusCategory {
	return CategorizeStatus(i.Status)
}

// CategorizeStatus maps a status name to its display category
func CategorizeStatus(status string) StatusCategory {
	switch status {
	case "Backlog":
		return CategoryBacklog
	case "Open", "In Progress", "Reopened":
		return CategoryInProgress
	case "On Review":
		return CategoryInReview
	case "Resolved", "Closed", "On Production", "In Build - Ok":
		return CategoryDone
	default:
		return CategoryDefault
	}
}

// GroupByAssignee groups issues by assignee display name. Groups are sorted
// by name and issues keep their relative input order inside each group.
// Unassigned issues are grouped under Unassigned.
func (is Issues) GroupByAssignee() []AssigneeGroup {
	byName := make(map[string]Issues)
	for _, issue := range is {
		name := issue.Assignee
		if name == "" {
			name = Unassigned
		}
		byName[name] = append(byName[name], issue)
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]AssigneeGroup, 0, len(names))
	for _, name := range names {
		groups = append(groups, AssigneeGroup{Assignee: name, Issues: byName[name]})
	}
	return groups
}

// PermalinkPadding is the longest permalink length, 0 when empty
func (is Issues) PermalinkPadding() int {
	return is.maxLen(func(i Issue) string { return i.Permalink })
}

// StatusPadding is the longest displayed status length, 0 when empty.
// Issues without a status count as NoStatus.
func (is Issues) StatusPadding() int {
	return is.maxLen(Issue.DisplayStatus)
}

// KeyPadding is the longest key length, 0 when empty
func (is Issues) KeyPadding() int {
	return is.maxLen(func(i Issue) string { return i.Key })
}

func (is Issues) maxLen(field func(Issue) string) int {
	longest := 0
	for _, issue := range is {
		if n := len(field(issue)); n > longest {
			longest = n
		}
	}
	return longest
}

// SortByID sorts issues by numeric id
func (is Issues) SortByID() {
	sort.SliceStable(is, func(a, b int) bool { return is[a].ID < is[b].ID })
}

// SortByField sorts issues by the string value of an extra field.
// Issues missing the field sort first.
func (is Issues) SortByField(id string) {
	sort.SliceStable(is, func(a, b int) bool {
		va, oka := is[a].Field(id)
		vb, okb := is[b].Field(id)
		if oka != okb {
			return !oka
		}
		return va < vb
	})
}

// SortByUpdated sorts issues by last update, oldest first
func (is Issues) SortByUpdated() {
	sort.SliceStable(is, func(a, b int) bool { return is[a].Updated.Before(is[b].Updated) })
}

package agile

import (
	"sort"
	"strconv"
)

// WindowRadius is how many sprints around the active one the window keeps
const WindowRadius = 2

// Sprints is a sprint collection
type Sprints []Sprint

// IDPadding is the longest rendered sprint id, 0 when empty
func (ss Sprints) IDPadding() int {
	longest := 0
	for _, s := range ss {
		if n := len(strconv.Itoa(s.ID)); n > longest {
			longest = n
		}
	}
	return longest
}

// Window selects the sprints worth showing: non-future sprints ordered by
// start date and cut to [p-radius, p+radius) around the active sprint p,
// followed by every future sprint ordered by name. Without an active sprint
// all non-future sprints are kept.
func (ss Sprints) Window(radius int) Sprints {
	var current, future Sprints
	for _, s := range ss {
		if s.IsFuture() {
			future = append(future, s)
		} else {
			current = append(current, s)
		}
	}

	// sprints without a start date sort first
	sort.SliceStable(current, func(a, b int) bool {
		sa, sb := current[a].StartDate, current[b].StartDate
		if sa == nil || sb == nil {
			return sa == nil && sb != nil
		}
		return sa.Before(*sb)
	})
	sort.SliceStable(future, func(a, b int) bool { return future[a].Name < future[b].Name })

	lo, hi := 0, len(current)
	for p, s := range current {
		if s.IsActive() {
			lo = max(0, p-radius)
			hi = min(len(current), p+radius)
			break
		}
	}

	window := make(Sprints, 0, hi-lo+len(future))
	window = append(window, current[lo:hi]...)
	return append(window, future...)
}

// FirstActive returns the first active sprint by name, or nil when none is active
func (ss Sprints) FirstActive() *Sprint {
	var active *Sprint
	for i := range ss {
		if !ss[i].IsActive() {
			continue
		}
		if active == nil || ss[i].Name < active.Name {
			s := ss[i]
			active = &s
		}
	}
	return active
}

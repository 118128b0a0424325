// Package agile holds the board, sprint and issue model together with the
// pure query-building and aggregation logic the shell commands are built from.
package agile

import (
	"strings"
	"time"
)

// SprintState is the lifecycle state of a sprint
type SprintState string

const (
	StateActive  SprintState = "active"
	StateFuture  SprintState = "future"
	StateClosed  SprintState = "closed"
	StateUnknown SprintState = "unknown"
)

// ParseSprintState maps a tracker state string to a SprintState.
// Unrecognized or empty values become StateUnknown.
func ParseSprintState(s string) SprintState {
	switch SprintState(strings.ToLower(strings.TrimSpace(s))) {
	case StateActive:
		return StateActive
	case StateFuture:
		return StateFuture
	case StateClosed:
		return StateClosed
	default:
		return StateUnknown
	}
}

// Board represents an agile board
type Board struct {
	ID   int
	Name string
	Type string
}

// Sprint represents a sprint on a board. Two sprints are the same sprint
// when their IDs match.
type Sprint struct {
	ID        int
	Name      string
	State     SprintState
	StartDate *time.Time
}

// IsActive reports whether the sprint is the running one
func (s Sprint) IsActive() bool {
	return s.State == StateActive
}

// IsFuture reports whether the sprint has not started yet
func (s Sprint) IsFuture() bool {
	return s.State == StateFuture
}

// Issue represents a tracker issue as seen by the shell
type Issue struct {
	// ID is the numeric tracker id, used for default ordering
	ID  int
	Key string

	// Assignee is the assignee display name, empty when unassigned
	Assignee string
	Status   string

	// Summary is empty when the issue has none
	Summary string
	Labels  []string

	// ResolutionDate is nil until the issue is resolved
	ResolutionDate *time.Time
	Updated        time.Time

	// Fields holds string-valued extra fields keyed by field id
	// (e.g. "customfield_14560" for the rank field)
	Fields map[string]string

	Permalink string
}

// Field returns the extra field value for id and whether it is present
func (i Issue) Field(id string) (string, bool) {
	if i.Fields == nil {
		return "", false
	}
	v, ok := i.Fields[id]
	return v, ok
}

package agile

import (
	"fmt"
	"testing"
	"time"
)

func closedSprints(n, active int) Sprints {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sprints := make(Sprints, n)
	for i := range sprints {
		start := base.AddDate(0, 0, 14*i)
		state := StateClosed
		if i == active {
			state = StateActive
		}
		sprints[i] = Sprint{ID: 100 + i, Name: fmt.Sprintf("Sprint %02d", i), State: state, StartDate: &start}
	}
	return sprints
}

func ids(ss Sprints) []int {
	out := make([]int, len(ss))
	for i, s := range ss {
		out[i] = s.ID
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestWindow_ActiveInTheMiddle(t *testing.T) {
	sprints := closedSprints(10, 5)

	got := ids(sprints.Window(WindowRadius))

	want := []int{103, 104, 105, 106}
	if !equalInts(got, want) {
		t.Errorf("Window() = %v, want %v", got, want)
	}
}

func TestWindow_ActiveFirst(t *testing.T) {
	sprints := closedSprints(10, 0)

	got := ids(sprints.Window(WindowRadius))

	want := []int{100, 101}
	if !equalInts(got, want) {
		t.Errorf("Window() = %v, want %v", got, want)
	}
}

func TestWindow_NoActiveKeepsAll(t *testing.T) {
	sprints := closedSprints(6, -1)

	got := ids(sprints.Window(WindowRadius))

	want := []int{100, 101, 102, 103, 104, 105}
	if !equalInts(got, want) {
		t.Errorf("Window() = %v, want %v", got, want)
	}
}

func TestWindow_SortsByStartDateAndAppendsFutureByName(t *testing.T) {
	sprints := closedSprints(4, 3)
	// shuffle input order
	sprints[0], sprints[3] = sprints[3], sprints[0]
	sprints = append(sprints,
		Sprint{ID: 201, Name: "Sprint Z", State: StateFuture},
		Sprint{ID: 200, Name: "Sprint B", State: StateFuture},
	)

	got := ids(sprints.Window(WindowRadius))

	want := []int{101, 102, 103, 200, 201}
	if !equalInts(got, want) {
		t.Errorf("Window() = %v, want %v", got, want)
	}
}

func TestWindow_Empty(t *testing.T) {
	if got := (Sprints{}).Window(WindowRadius); len(got) != 0 {
		t.Errorf("expected empty window, got %v", got)
	}
}

func TestIDPadding(t *testing.T) {
	if got := (Sprints{}).IDPadding(); got != 0 {
		t.Errorf("IDPadding() = %d, want 0", got)
	}
	if got := (Sprints{{ID: 7}, {ID: 1234}, {ID: 56}}).IDPadding(); got != 4 {
		t.Errorf("IDPadding() = %d, want 4", got)
	}
}

func TestFirstActive(t *testing.T) {
	sprints := Sprints{
		{ID: 1, Name: "B", State: StateActive},
		{ID: 2, Name: "A", State: StateActive},
		{ID: 3, Name: "0", State: StateClosed},
	}

	got := sprints.FirstActive()
	if got == nil || got.ID != 2 {
		t.Errorf("FirstActive() = %v, want sprint 2", got)
	}
	if (Sprints{{ID: 1, State: StateFuture}}).FirstActive() != nil {
		t.Error("expected nil without an active sprint")
	}
}

func TestParseSprintState(t *testing.T) {
	tests := map[string]SprintState{
		"active": StateActive,
		"ACTIVE": StateActive,
		"future": StateFuture,
		"closed": StateClosed,
		"":       StateUnknown,
		"weird":  StateUnknown,
	}
	for in, want := range tests {
		if got := ParseSprintState(in); got != want {
			t.Errorf("ParseSprintState(%q) = %q, want %q", in, got, want)
		}
	}
}

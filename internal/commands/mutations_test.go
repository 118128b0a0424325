package commands

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/jsprint/jsprint/internal/agile"
	"github.com/jsprint/jsprint/internal/shell"
)

func TestUseSprint_Active(t *testing.T) {
	mock := newMockTracker()
	mock.sprints = agile.Sprints{
		{ID: 3, Name: "Sprint 3", State: agile.StateClosed},
		{ID: 4, Name: "Sprint 4", State: agile.StateActive},
	}
	s, buf := newTestSession(mock)

	if err := UseSprint(context.Background(), s, "u"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if s.CurrentSprint == nil || s.CurrentSprint.ID != 4 {
		t.Errorf("Expected sprint 4, got %+v", s.CurrentSprint)
	}
	if buf.String() != "Using sprint Sprint 4\n" {
		t.Errorf("Unexpected output %q", buf.String())
	}
}

func TestUseSprint_NoActive(t *testing.T) {
	s, buf := newTestSession(newMockTracker())
	withSprint(s)

	if err := UseSprint(context.Background(), s, "u"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if s.CurrentSprint.ID != 4 {
		t.Error("Expected current sprint to stay unchanged")
	}
	if buf.String() != "No active sprint found\n" {
		t.Errorf("Unexpected output %q", buf.String())
	}
}

func TestUseSprint_ByID(t *testing.T) {
	mock := newMockTracker()
	mock.sprints = agile.Sprints{{ID: 9, Name: "Sprint 9", State: agile.StateFuture}}
	s, _ := newTestSession(mock)

	if err := UseSprint(context.Background(), s, "u 9"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if s.CurrentSprint == nil || s.CurrentSprint.ID != 9 {
		t.Errorf("Expected sprint 9, got %+v", s.CurrentSprint)
	}
}

func TestUseSprint_UnknownID(t *testing.T) {
	s, buf := newTestSession(newMockTracker())
	withSprint(s)

	if err := UseSprint(context.Background(), s, "u 99"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if s.CurrentSprint.ID != 4 {
		t.Error("Expected current sprint to stay unchanged")
	}
	if buf.String() != "No sprint found with ID 99\n" {
		t.Errorf("Unexpected output %q", buf.String())
	}
}

func TestUseSprint_BadArguments(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"u abc", "Sprint ID abc is not a number"},
		{"u 1 2", "Pass only one sprint ID"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			s, _ := newTestSession(newMockTracker())

			err := UseSprint(context.Background(), s, tt.line)

			var usage *shell.UsageError
			if !errors.As(err, &usage) || usage.Message != tt.want {
				t.Errorf("Expected usage error %q, got %v", tt.want, err)
			}
			if s.CurrentSprint != nil {
				t.Error("Expected no sprint to be selected")
			}
		})
	}
}

func TestAddToSprint(t *testing.T) {
	mock := newMockTracker()
	s, buf := newTestSession(mock)

	if err := AddToSprint(context.Background(), withSprint(s), "a 12 13"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !reflect.DeepEqual(mock.moved[4], []string{"PROJ-12", "PROJ-13"}) {
		t.Errorf("Unexpected moves %v", mock.moved)
	}
	if buf.String() != "Moved PROJ-12, PROJ-13 to sprint Sprint 4\n" {
		t.Errorf("Unexpected output %q", buf.String())
	}
}

func TestAddToSprint_Errors(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		sprint    bool
		wantUsage bool
		wantErr   error
	}{
		{name: "no numbers", line: "a", sprint: true, wantUsage: true},
		{name: "not a number", line: "a 12 x", sprint: true, wantUsage: true},
		{name: "no sprint", line: "a 12", wantErr: shell.ErrNoSprint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockTracker()
			s, _ := newTestSession(mock)
			if tt.sprint {
				withSprint(s)
			}

			err := AddToSprint(context.Background(), s, tt.line)

			var usage *shell.UsageError
			if tt.wantUsage && !errors.As(err, &usage) {
				t.Errorf("Expected usage error, got %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
			if len(mock.moved) != 0 {
				t.Errorf("Expected no moves, got %v", mock.moved)
			}
		})
	}
}

func TestAddToSprint_TrackerError(t *testing.T) {
	mock := newMockTracker()
	mock.moveErr = errors.New("issue does not exist")
	s, _ := newTestSession(mock)

	err := AddToSprint(context.Background(), withSprint(s), "add 1")

	if err == nil || !strings.Contains(err.Error(), "issue does not exist") {
		t.Errorf("Expected tracker error, got %v", err)
	}
}

func TestBacklog(t *testing.T) {
	mock := newMockTracker()
	s, buf := newTestSession(mock)

	if err := Backlog(context.Background(), s, "bk 5"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !reflect.DeepEqual(mock.backlogged, []string{"PROJ-5"}) {
		t.Errorf("Unexpected backlog moves %v", mock.backlogged)
	}
	if buf.String() != "Moved PROJ-5 to backlog\n" {
		t.Errorf("Unexpected output %q", buf.String())
	}
}

func TestBacklog_NoNumbers(t *testing.T) {
	mock := newMockTracker()
	s, _ := newTestSession(mock)

	err := Backlog(context.Background(), s, "bk")

	var usage *shell.UsageError
	if !errors.As(err, &usage) || usage.Message != "At least one issue number is needed" {
		t.Errorf("Expected usage error, got %v", err)
	}
	if len(mock.backlogged) != 0 {
		t.Error("Expected no tracker call")
	}
}

func TestAssign(t *testing.T) {
	mock := newMockTracker()
	s, buf := newTestSession(mock)

	if err := Assign(context.Background(), s, "as bob 1 2"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !reflect.DeepEqual(mock.assignments, []string{"PROJ-1=bob", "PROJ-2=bob"}) {
		t.Errorf("Unexpected assignments %v", mock.assignments)
	}
	if buf.String() != "Assigned PROJ-1 to bob\nAssigned PROJ-2 to bob\n" {
		t.Errorf("Unexpected output %q", buf.String())
	}
}

func TestAssign_MissingArguments(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"as", "Assignee and at least one issue number is necessary"},
		{"as bob", "At least one issue number is necessary"},
		{"as bob one", "Issue number one is not a number"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			mock := newMockTracker()
			s, _ := newTestSession(mock)

			err := Assign(context.Background(), s, tt.line)

			var usage *shell.UsageError
			if !errors.As(err, &usage) || usage.Message != tt.want {
				t.Errorf("Expected usage error %q, got %v", tt.want, err)
			}
			if len(mock.assignments) != 0 {
				t.Error("Expected no tracker call")
			}
		})
	}
}

func TestAssign_TrackerError(t *testing.T) {
	mock := newMockTracker()
	mock.assignErr = errors.New("user does not exist")
	s, _ := newTestSession(mock)

	err := Assign(context.Background(), s, "as nobody 1 2")

	if err == nil || !strings.Contains(err.Error(), "PROJ-1") {
		t.Errorf("Expected error naming the first issue, got %v", err)
	}
}

// Package shell holds the interactive session: the current sprint context,
// the command registry and the read-dispatch loop.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jsprint/jsprint/internal/agile"
	"github.com/jsprint/jsprint/internal/config"
	"github.com/jsprint/jsprint/internal/ui"
)

// NoSprintName is shown in the prompt when no sprint is selected
const NoSprintName = "<none>"

// ErrNoSprint is returned by commands that need a current sprint when none is selected
var ErrNoSprint = errors.New("No sprint selected, use 'u' to select one")

// Tracker defines the issue tracker operations used by the shell commands.
// This allows for easier testing with mock implementations.
type Tracker interface {
	GetBoard(ctx context.Context, boardID int) (*agile.Board, error)
	GetSprint(ctx context.Context, sprintID int) (*agile.Sprint, error)
	ListSprints(ctx context.Context, boardID int, state string) (agile.Sprints, error)
	SearchIssues(ctx context.Context, boardID int, jql string) (agile.Issues, error)
	MoveIssuesToSprint(ctx context.Context, sprintID int, keys []string) error
	AssignIssue(ctx context.Context, key, assignee string) error
	MoveIssuesToBacklog(ctx context.Context, keys []string) error
}

// Session is the state every command receives. Only one command runs at a
// time, so it is never accessed concurrently.
type Session struct {
	Settings *config.Settings
	Tracker  Tracker
	Printer  *ui.Printer
	Board    agile.Board

	// CurrentSprint is nil until a sprint is selected
	CurrentSprint *agile.Sprint

	// Now is the clock used for review ages
	Now func() time.Time
}

// NewSession creates a session without a board or current sprint
func NewSession(settings *config.Settings, tracker Tracker, printer *ui.Printer) *Session {
	return &Session{
		Settings: settings,
		Tracker:  tracker,
		Printer:  printer,
		Board:    agile.Board{ID: settings.JiraBoardID},
		Now:      time.Now,
	}
}

// Out is the writer commands print to
func (s *Session) Out() io.Writer {
	return s.Printer.Out()
}

// Connect fetches the configured board
func (s *Session) Connect(ctx context.Context) error {
	board, err := s.Tracker.GetBoard(ctx, s.Settings.JiraBoardID)
	if err != nil {
		return fmt.Errorf("failed to get board %d: %w", s.Settings.JiraBoardID, err)
	}
	s.Board = *board
	return nil
}

// ActiveSprint returns the board's active sprint, or nil when no sprint is active
func (s *Session) ActiveSprint(ctx context.Context) (*agile.Sprint, error) {
	sprints, err := s.Tracker.ListSprints(ctx, s.Board.ID, string(agile.StateActive))
	if err != nil {
		return nil, fmt.Errorf("failed to list active sprints: %w", err)
	}
	return sprints.FirstActive(), nil
}

// UseSprint makes sprint the current sprint
func (s *Session) UseSprint(sprint *agile.Sprint) {
	s.CurrentSprint = sprint
}

// RequireSprint returns the current sprint or ErrNoSprint
func (s *Session) RequireSprint() (*agile.Sprint, error) {
	if s.CurrentSprint == nil {
		return nil, ErrNoSprint
	}
	return s.CurrentSprint, nil
}

// SprintName is the current sprint name, or NoSprintName
func (s *Session) SprintName() string {
	if s.CurrentSprint == nil {
		return NoSprintName
	}
	return s.CurrentSprint.Name
}

// SprintIssues returns the team's issues of a sprint
func (s *Session) SprintIssues(ctx context.Context, sprint *agile.Sprint) (agile.Issues, error) {
	return s.search(ctx, agile.BuildFilter(s.Settings.Scope(), sprint.ID))
}

// ReviewIssues returns the team's resolved or on-review issues of a sprint
func (s *Session) ReviewIssues(ctx context.Context, sprint *agile.Sprint) (agile.Issues, error) {
	return s.search(ctx, agile.ReviewFilter(s.Settings.Scope(), sprint.ID))
}

func (s *Session) search(ctx context.Context, clauses []string) (agile.Issues, error) {
	issues, err := s.Tracker.SearchIssues(ctx, s.Board.ID, agile.JQL(clauses))
	if err != nil {
		return nil, fmt.Errorf("failed to search issues: %w", err)
	}
	return issues, nil
}

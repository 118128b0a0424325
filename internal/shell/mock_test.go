package shell

import (
	"bytes"
	"context"

	"github.com/jsprint/jsprint/internal/agile"
	"github.com/jsprint/jsprint/internal/config"
	"github.com/jsprint/jsprint/internal/ui"
)

// mockTracker implements Tracker for testing
type mockTracker struct {
	board   *agile.Board
	sprints agile.Sprints
	issues  agile.Issues

	// Captured calls
	lastJQL         string
	lastSprintState string

	// Error injection
	getBoardErr    error
	listSprintsErr error
	searchErr      error
}

func (m *mockTracker) GetBoard(ctx context.Context, boardID int) (*agile.Board, error) {
	if m.getBoardErr != nil {
		return nil, m.getBoardErr
	}
	return m.board, nil
}

func (m *mockTracker) GetSprint(ctx context.Context, sprintID int) (*agile.Sprint, error) {
	for i := range m.sprints {
		if m.sprints[i].ID == sprintID {
			return &m.sprints[i], nil
		}
	}
	return nil, nil
}

func (m *mockTracker) ListSprints(ctx context.Context, boardID int, state string) (agile.Sprints, error) {
	m.lastSprintState = state
	if m.listSprintsErr != nil {
		return nil, m.listSprintsErr
	}
	if state == "" {
		return m.sprints, nil
	}
	var out agile.Sprints
	for _, s := range m.sprints {
		if string(s.State) == state {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockTracker) SearchIssues(ctx context.Context, boardID int, jql string) (agile.Issues, error) {
	m.lastJQL = jql
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return m.issues, nil
}

func (m *mockTracker) MoveIssuesToSprint(ctx context.Context, sprintID int, keys []string) error {
	return nil
}

func (m *mockTracker) AssignIssue(ctx context.Context, key, assignee string) error {
	return nil
}

func (m *mockTracker) MoveIssuesToBacklog(ctx context.Context, keys []string) error {
	return nil
}

func testSettings() *config.Settings {
	return &config.Settings{
		JiraURL:      "https://jira.example.com",
		JiraUsername: "alice",
		JiraPassword: "secret",
		JiraProject:  "PROJ",
		JiraBoardID:  7,
		IssuePrefix:  "PROJ",
		RankField:    config.DefaultRankField,
	}
}

func newTestSession(tracker Tracker) (*Session, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewSession(testSettings(), tracker, ui.New(buf, false, false, 80)), buf
}

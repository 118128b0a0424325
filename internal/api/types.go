package api

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jsprint/jsprint/internal/agile"
)

// Board is the agile board resource
type Board struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Sprint is the agile sprint resource
type Sprint struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	State     string `json:"state"`
	StartDate string `json:"startDate,omitempty"`
}

// SprintPage is one page of the board sprint listing
type SprintPage struct {
	StartAt    int      `json:"startAt"`
	MaxResults int      `json:"maxResults"`
	IsLast     bool     `json:"isLast"`
	Values     []Sprint `json:"values"`
}

// Issue is the issue resource. Fields is kept raw so custom fields survive decoding.
type Issue struct {
	ID     string          `json:"id"`
	Key    string          `json:"key"`
	Self   string          `json:"self"`
	Fields json.RawMessage `json:"fields"`
}

// IssueFields contains the standard fields the shell uses
type IssueFields struct {
	Summary        string       `json:"summary"`
	Status         *StatusField `json:"status"`
	Assignee       *UserField   `json:"assignee"`
	Labels         []string     `json:"labels"`
	ResolutionDate string       `json:"resolutiondate"`
	Updated        string       `json:"updated"`
}

// StatusField represents a Jira issue status.
type StatusField struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserField represents a Jira user.
type UserField struct {
	Name        string `json:"name"`
	AccountID   string `json:"accountId"`
	DisplayName string `json:"displayName"`
}

// IssuePage is one page of a JQL issue search
type IssuePage struct {
	StartAt    int     `json:"startAt"`
	MaxResults int     `json:"maxResults"`
	Total      int     `json:"total"`
	Issues     []Issue `json:"issues"`
}

// issueKeys is the request body of the sprint and backlog move endpoints
type issueKeys struct {
	Issues []string `json:"issues"`
}

// timestampLayouts are the formats Jira uses for dates, server and cloud
var timestampLayouts = []string{
	"2006-01-02T15:04:05.000-0700",
	"2006-01-02T15:04:05-0700",
	time.RFC3339Nano,
	time.RFC3339,
}

// ParseTimestamp parses a Jira timestamp
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func parseOptionalTimestamp(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseTimestamp(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ToAgile converts the wire board
func (b Board) ToAgile() agile.Board {
	return agile.Board{ID: b.ID, Name: b.Name, Type: b.Type}
}

// ToAgile converts the wire sprint
func (s Sprint) ToAgile() (agile.Sprint, error) {
	start, err := parseOptionalTimestamp(s.StartDate)
	if err != nil {
		return agile.Sprint{}, fmt.Errorf("parse start date of sprint %d: %w", s.ID, err)
	}
	return agile.Sprint{
		ID:        s.ID,
		Name:      s.Name,
		State:     agile.ParseSprintState(s.State),
		StartDate: start,
	}, nil
}

// ToAgile converts the wire issue. String-valued custom fields are copied into
// agile.Issue.Fields; permalink is built from baseURL.
func (i Issue) ToAgile(baseURL string) (agile.Issue, error) {
	var fields IssueFields
	if len(i.Fields) > 0 {
		if err := json.Unmarshal(i.Fields, &fields); err != nil {
			return agile.Issue{}, fmt.Errorf("parse fields of %s: %w", i.Key, err)
		}
	}

	id, err := strconv.Atoi(i.ID)
	if err != nil {
		return agile.Issue{}, fmt.Errorf("parse id of %s: %w", i.Key, err)
	}

	out := agile.Issue{
		ID:        id,
		Key:       i.Key,
		Summary:   fields.Summary,
		Labels:    fields.Labels,
		Fields:    customFields(i.Fields),
		Permalink: Permalink(baseURL, i.Key),
	}
	if fields.Status != nil {
		out.Status = fields.Status.Name
	}
	if fields.Assignee != nil {
		out.Assignee = fields.Assignee.DisplayName
	}

	if out.ResolutionDate, err = parseOptionalTimestamp(fields.ResolutionDate); err != nil {
		return agile.Issue{}, fmt.Errorf("parse resolution date of %s: %w", i.Key, err)
	}
	updated, err := parseOptionalTimestamp(fields.Updated)
	if err != nil {
		return agile.Issue{}, fmt.Errorf("parse updated of %s: %w", i.Key, err)
	}
	if updated != nil {
		out.Updated = *updated
	}

	return out, nil
}

// customFields extracts custom fields whose value is a JSON string
func customFields(raw json.RawMessage) map[string]string {
	var all map[string]json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &all) != nil {
		return nil
	}

	out := make(map[string]string)
	for id, value := range all {
		if !strings.HasPrefix(id, "customfield_") {
			continue
		}
		var s string
		if json.Unmarshal(value, &s) == nil {
			out[id] = s
		}
	}
	return out
}

// Permalink returns the browse URL of an issue key
func Permalink(baseURL, key string) string {
	return strings.TrimSuffix(baseURL, "/") + "/browse/" + key
}

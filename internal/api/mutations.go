package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// MoveIssuesToSprint moves issues, by key, into a sprint
func (c *Client) MoveIssuesToSprint(ctx context.Context, sprintID int, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	path := fmt.Sprintf("/rest/agile/1.0/sprint/%d/issue", sprintID)
	if err := c.do(ctx, "POST", path, issueKeys{Issues: keys}, nil); err != nil {
		return WrapError("move", fmt.Sprintf("%s to sprint %d", strings.Join(keys, ","), sprintID), err)
	}
	return nil
}

// MoveIssuesToBacklog moves issues, by key, out of their sprint into the backlog
func (c *Client) MoveIssuesToBacklog(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.do(ctx, "POST", "/rest/agile/1.0/backlog/issue", issueKeys{Issues: keys}, nil); err != nil {
		return WrapError("move", strings.Join(keys, ",")+" to backlog", err)
	}
	return nil
}

// AssignIssue assigns an issue to a user name
func (c *Client) AssignIssue(ctx context.Context, key, assignee string) error {
	path := fmt.Sprintf("/rest/api/2/issue/%s/assignee", url.PathEscape(key))
	body := map[string]string{"name": assignee}
	if err := c.do(ctx, "PUT", path, body, nil); err != nil {
		return WrapError("assign", key, err)
	}
	return nil
}

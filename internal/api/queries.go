package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/jsprint/jsprint/internal/agile"
)

const (
	sprintPageSize = 50
	issuePageSize  = 100
)

// GetBoard fetches a board by id
func (c *Client) GetBoard(ctx context.Context, boardID int) (*agile.Board, error) {
	var board Board
	if err := c.do(ctx, "GET", fmt.Sprintf("/rest/agile/1.0/board/%d", boardID), nil, &board); err != nil {
		return nil, WrapError("get", fmt.Sprintf("board %d", boardID), err)
	}
	out := board.ToAgile()
	return &out, nil
}

// GetSprint fetches a sprint by id. It returns nil without error when the
// sprint does not exist.
func (c *Client) GetSprint(ctx context.Context, sprintID int) (*agile.Sprint, error) {
	var sprint Sprint
	if err := c.do(ctx, "GET", fmt.Sprintf("/rest/agile/1.0/sprint/%d", sprintID), nil, &sprint); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, WrapError("get", fmt.Sprintf("sprint %d", sprintID), err)
	}
	out, err := sprint.ToAgile()
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListSprints returns every sprint of a board, optionally restricted to a
// state ("active", "future", "closed"; empty for all).
func (c *Client) ListSprints(ctx context.Context, boardID int, state string) (agile.Sprints, error) {
	var sprints agile.Sprints
	startAt := 0

	for {
		params := url.Values{
			"startAt":    {strconv.Itoa(startAt)},
			"maxResults": {strconv.Itoa(sprintPageSize)},
		}
		if state != "" {
			params.Set("state", state)
		}

		var page SprintPage
		path := fmt.Sprintf("/rest/agile/1.0/board/%d/sprint?%s", boardID, params.Encode())
		if err := c.do(ctx, "GET", path, nil, &page); err != nil {
			return nil, WrapError("list", fmt.Sprintf("sprints of board %d", boardID), err)
		}

		for _, wire := range page.Values {
			sprint, err := wire.ToAgile()
			if err != nil {
				return nil, err
			}
			sprints = append(sprints, sprint)
		}

		if page.IsLast || len(page.Values) == 0 {
			break
		}
		startAt += len(page.Values)
	}

	return sprints, nil
}

// SearchIssues returns the board issues matching a JQL query, handling pagination.
func (c *Client) SearchIssues(ctx context.Context, boardID int, jql string) (agile.Issues, error) {
	var issues agile.Issues
	startAt := 0

	for {
		params := url.Values{
			"jql":           {jql},
			"validateQuery": {"true"},
			"startAt":       {strconv.Itoa(startAt)},
			"maxResults":    {strconv.Itoa(issuePageSize)},
		}

		var page IssuePage
		path := fmt.Sprintf("/rest/agile/1.0/board/%d/issue?%s", boardID, params.Encode())
		if err := c.do(ctx, "GET", path, nil, &page); err != nil {
			return nil, WrapError("search", "issues", err)
		}

		for _, wire := range page.Issues {
			issue, err := wire.ToAgile(c.baseURL)
			if err != nil {
				return nil, err
			}
			issues = append(issues, issue)
		}

		if len(page.Issues) == 0 || startAt+len(page.Issues) >= page.Total {
			break
		}
		startAt += len(page.Issues)
	}

	return issues, nil
}

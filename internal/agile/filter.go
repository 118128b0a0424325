package agile

import (
	"fmt"
	"regexp"
	"strings"
)

// ReviewStatusClause selects issues waiting for review or already resolved
const ReviewStatusClause = `(status = "Resolved" or status = "On Review")`

// Scope is the part of the session that narrows every issue query
type Scope struct {
	Project string
	Members []string
	Labels  []string
}

// BuildFilter returns the JQL clauses selecting the issues of a sprint.
// Clause order is fixed: project, sprint, then the team member clause
// (only with members) and the team label clause (only with labels).
func BuildFilter(scope Scope, sprintID int) []string {
	clauses := []string{
		fmt.Sprintf("project = '%s'", scope.Project),
		fmt.Sprintf("sprint = %d", sprintID),
	}

	if len(scope.Members) > 0 {
		clauses = append(clauses, fmt.Sprintf("(assignee IS NULL or assignee IN (%s))", joinValues(scope.Members)))
	}

	if len(scope.Labels) > 0 {
		clauses = append(clauses, fmt.Sprintf("(labels IS NULL or labels IN (%s))", joinValues(scope.Labels)))
	}

	return clauses
}

// ReviewFilter is BuildFilter with the review status disjunction appended last
func ReviewFilter(scope Scope, sprintID int) []string {
	return append(BuildFilter(scope, sprintID), ReviewStatusClause)
}

// JQL joins clauses with AND in the given order
func JQL(clauses []string) string {
	return strings.Join(clauses, " AND ")
}

var bareValue = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// joinValues renders a JQL value list. Plain words pass as they are, values
// already wrapped in single or double quotes are kept verbatim, and anything
// else is double quoted with backslashes and quotes escaped.
func joinValues(values []string) string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = quoteValue(v)
	}
	return strings.Join(out, ",")
}

func quoteValue(v string) string {
	if bareValue.MatchString(v) || isQuoted(v) {
		return v
	}
	escaped := strings.ReplaceAll(v, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}

func isQuoted(v string) bool {
	if len(v) < 2 {
		return false
	}
	first, last := v[0], v[len(v)-1]
	return first == last && (first == '\'' || first == '"')
}

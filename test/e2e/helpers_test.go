//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// CommandResult holds the result of running a command
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// runJSprint executes the local binary in workDir, feeding stdin to the shell.
func runJSprint(t *testing.T, workDir, stdin string, args ...string) *CommandResult {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = workDir
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Env = append(os.Environ(), "NO_COLOR=1", "GOCOVERDIR="+t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := &CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = 1
		}
		if result.Stderr != "" {
			t.Logf("Command stderr: %s", result.Stderr)
		}
	}

	return result
}

// fakeJira serves the agile endpoints jsprint uses and records mutations.
type fakeJira struct {
	*httptest.Server

	mu          sync.Mutex
	moved       map[string][]string
	backlogged  []string
	assignments map[string]string
}

func newFakeJira(t *testing.T) *fakeJira {
	t.Helper()
	f := &fakeJira{
		moved:       make(map[string][]string),
		assignments: make(map[string]string),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /rest/agile/1.0/board/7", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{"id": 7, "name": "Team board", "type": "scrum"})
	})
	mux.HandleFunc("GET /rest/agile/1.0/board/7/sprint", func(w http.ResponseWriter, r *http.Request) {
		sprints := []map[string]interface{}{
			{"id": 40, "name": "Sprint 40", "state": "closed", "startDate": "2024-02-19T09:00:00.000Z"},
			{"id": 41, "name": "Sprint 41", "state": "active", "startDate": "2024-03-04T09:00:00.000Z"},
			{"id": 42, "name": "Sprint 42", "state": "future"},
		}
		if state := r.URL.Query().Get("state"); state != "" {
			var filtered []map[string]interface{}
			for _, s := range sprints {
				if s["state"] == state {
					filtered = append(filtered, s)
				}
			}
			sprints = filtered
		}
		writeJSON(w, map[string]interface{}{"isLast": true, "values": sprints})
	})
	mux.HandleFunc("GET /rest/agile/1.0/sprint/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "42" {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, map[string]interface{}{"id": 42, "name": "Sprint 42", "state": "future"})
	})
	mux.HandleFunc("GET /rest/agile/1.0/board/7/issue", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{"total": 2, "issues": []map[string]interface{}{
			{"id": "1001", "key": "PROJ-1", "fields": map[string]interface{}{
				"summary": "Login page", "status": map[string]string{"name": "In Progress"},
				"assignee": map[string]string{"displayName": "Alice"}, "labels": []string{"frontend"},
			}},
			{"id": "1002", "key": "PROJ-2", "fields": map[string]interface{}{
				"summary": "Token refresh", "status": map[string]string{"name": "On Review"},
				"labels": []string{"backend", "frontend"},
			}},
		}})
	})
	mux.HandleFunc("POST /rest/agile/1.0/sprint/{id}/issue", func(w http.ResponseWriter, r *http.Request) {
		keys := decodeKeys(t, r)
		f.mu.Lock()
		f.moved[r.PathValue("id")] = append(f.moved[r.PathValue("id")], keys...)
		f.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("POST /rest/agile/1.0/backlog/issue", func(w http.ResponseWriter, r *http.Request) {
		keys := decodeKeys(t, r)
		f.mu.Lock()
		f.backlogged = append(f.backlogged, keys...)
		f.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("PUT /rest/api/2/issue/{key}/assignee", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name string `json:"name"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.assignments[r.PathValue("key")] = body.Name
		f.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Close)
	return f
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func decodeKeys(t *testing.T, r *http.Request) []string {
	var body struct {
		Issues []string `json:"issues"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		t.Errorf("failed to decode request body: %v", err)
	}
	return body.Issues
}

// setupWorkDir writes a settings file pointing at the fake server and
// returns the directory holding it.
func setupWorkDir(t *testing.T, jiraURL string) string {
	t.Helper()
	dir := t.TempDir()
	settings := fmt.Sprintf(`{
  "jira_url": %q,
  "jira_username": "alice",
  "jira_password": "secret",
  "jira_project": "PROJ",
  "jira_board_id": 7,
  "labels_mapping": {"frontend": "Front"}
}`, jiraURL)
	if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte(settings), 0600); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}
	return dir
}

// assertContains checks that the output contains the expected substring.
func assertContains(t *testing.T, output, expected string) {
	t.Helper()

	if !strings.Contains(output, expected) {
		t.Errorf("Expected output to contain %q\nGot: %s", expected, output)
	}
}

// assertExitCode checks that the command result has the expected exit code.
func assertExitCode(t *testing.T, result *CommandResult, expected int) {
	t.Helper()

	if result.ExitCode != expected {
		t.Errorf("Expected exit code %d, got %d\nStdout: %s\nStderr: %s",
			expected, result.ExitCode, result.Stdout, result.Stderr)
	}
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jsprint/jsprint/internal/agile"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultRankField is the custom field holding the board rank
const DefaultRankField = "customfield_14560"

// EnvPrefix prefixes the environment variables that override settings
const EnvPrefix = "JSPRINT"

// ConfigFileNames are the settings files searched for, in order, in each directory
var ConfigFileNames = []string{"settings.json", ".jsprint.yml", ".jsprint.yaml", ".jsprint.toml"}

// Settings holds the tracker connection and team scope. It is not modified
// after Load returns.
type Settings struct {
	JiraURL      string `yaml:"jira_url" toml:"jira_url"`
	JiraUsername string `yaml:"jira_username" toml:"jira_username"`
	JiraPassword string `yaml:"jira_password,omitempty" toml:"jira_password"`
	JiraProject  string `yaml:"jira_project" toml:"jira_project"`
	JiraBoardID  int    `yaml:"jira_board_id" toml:"jira_board_id"`

	TeamMembers   []string          `yaml:"team_members,omitempty" toml:"team_members"`
	TeamLabels    []string          `yaml:"team_labels,omitempty" toml:"team_labels"`
	LabelsMapping map[string]string `yaml:"labels_mapping,omitempty" toml:"labels_mapping"`

	// IssuePrefix is the key prefix issue numbers expand to, defaults to JiraProject
	IssuePrefix string `yaml:"issue_prefix,omitempty" toml:"issue_prefix"`
	// RankField is the field id the rp command sorts by
	RankField string `yaml:"rank_field,omitempty" toml:"rank_field"`
}

// Load reads and parses a settings file from the given path.
// Files ending in .toml are parsed as TOML, everything else as YAML,
// which also accepts the JSON settings format.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var s Settings
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to parse settings file: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	s.applyDefaults()
	return &s, nil
}

// LoadFromDirectory finds and loads the settings file from the given directory
// or one of its parents.
func LoadFromDirectory(dir string) (*Settings, error) {
	path, err := FindConfigFile(dir)
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// FindConfigFile searches for a settings file starting from dir and walking up
// the directory tree until found or filesystem root is reached.
func FindConfigFile(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		for _, name := range ConfigFileNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no settings file (%s) found in %s or any parent directory",
				strings.Join(ConfigFileNames, ", "), startDir)
		}
		dir = parent
	}
}

// ApplyEnvOverrides replaces connection settings with JSPRINT_* environment
// variables when they are set, e.g. JSPRINT_JIRA_PASSWORD.
func (s *Settings) ApplyEnvOverrides() error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	for key, target := range map[string]*string{
		"jira_url":      &s.JiraURL,
		"jira_username": &s.JiraUsername,
		"jira_password": &s.JiraPassword,
		"jira_project":  &s.JiraProject,
	} {
		if value := v.GetString(key); value != "" {
			*target = value
		}
	}

	if raw := v.GetString("jira_board_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid %s_JIRA_BOARD_ID %q: %w", EnvPrefix, raw, err)
		}
		s.JiraBoardID = id
	}

	s.applyDefaults()
	return nil
}

func (s *Settings) applyDefaults() {
	s.JiraURL = strings.TrimSuffix(s.JiraURL, "/")
	if s.IssuePrefix == "" {
		s.IssuePrefix = s.JiraProject
	}
	if s.RankField == "" {
		s.RankField = DefaultRankField
	}
}

// Validate checks that required settings are present
func (s *Settings) Validate() error {
	if s.JiraURL == "" {
		return fmt.Errorf("jira_url is required")
	}

	if s.JiraUsername == "" {
		return fmt.Errorf("jira_username is required")
	}

	if s.JiraProject == "" {
		return fmt.Errorf("jira_project is required")
	}

	if s.JiraBoardID <= 0 {
		return fmt.Errorf("jira_board_id must be a positive number")
	}

	return nil
}

// Scope returns the team filters applied to every issue query
func (s *Settings) Scope() agile.Scope {
	return agile.Scope{
		Project: s.JiraProject,
		Members: s.TeamMembers,
		Labels:  s.TeamLabels,
	}
}

// IssueKey expands an issue number to a tracker key, e.g. 42 -> "BIDEV-42"
func (s *Settings) IssueKey(number int) string {
	return fmt.Sprintf("%s-%d", s.IssuePrefix, number)
}

// Package defaults provides the embedded settings template for jsprint init.
package defaults

import (
	_ "embed"

	"github.com/jsprint/jsprint/internal/config"
	"gopkg.in/yaml.v3"
)

// FileName is the settings file jsprint init writes
const FileName = ".jsprint.yml"

//go:embed settings.yml
var settingsYAML []byte

// Template returns the raw settings template, comments included
func Template() []byte {
	return append([]byte(nil), settingsYAML...)
}

// Load parses and returns the embedded template settings.
func Load() (*config.Settings, error) {
	var s config.Settings
	if err := yaml.Unmarshal(settingsYAML, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

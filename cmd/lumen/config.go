package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lumen-lang/lumen/internal/parser"
	"github.com/lumen-lang/lumen/internal/symbols"
)

// ProjectConfig is the shape of lumen.yaml: default typing-environment
// bindings plus a couple of CLI toggles.
type ProjectConfig struct {
	Env     map[string]string `yaml:"env"`
	Color   *bool             `yaml:"color,omitempty"`
	History bool              `yaml:"history,omitempty"`
}

// LoadProjectConfig reads lumen.yaml at path. A missing file is not an
// error — callers get a zero-value config and the CLI proceeds with the
// empty environment and default toggles.
func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &ProjectConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Environment builds the typing environment described by cfg.Env, parsing
// each value through the type-literal surface.
func (cfg *ProjectConfig) Environment() (*symbols.Environment, error) {
	env := symbols.NewEnvironment()
	for name, lit := range cfg.Env {
		ty, err := parser.ParseType(lit)
		if err != nil {
			return nil, fmt.Errorf("lumen.yaml: env %s: %w", name, err)
		}
		env = env.Extend(name, ty)
	}
	return env, nil
}

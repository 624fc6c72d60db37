// ABOUTME: Loads the line-editor configuration (variables and key bindings) from YAML
// ABOUTME: Application sections override the top level for a matching application name

package config

import (
	"errors"
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"
)

// Section holds variables and key bindings.
type Section struct {
	Variables map[string]string   `yaml:"variables"`
	Bindings  map[string][]string `yaml:"bindings"`
}

// Inputrc is the line-editor configuration file. Example:
//
//	variables:
//	  bell-style: none
//	  history-size: "500"
//	bindings:
//	  kill-line: [ctrl+k, alt+k]
//	applications:
//	  mysh:
//	    variables:
//	      completion-ignore-case: "on"
type Inputrc struct {
	Section      `yaml:",inline"`
	Applications map[string]*Section `yaml:"applications"`
}

// LoadInputrc reads path. An empty path or a missing file yields an empty
// configuration.
func LoadInputrc(path string) (*Inputrc, error) {
	if path == "" {
		return &Inputrc{}, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Inputrc{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading inputrc: %w", err)
	}
	rc, err := ParseInputrc(data)
	if err != nil {
		return nil, fmt.Errorf("parsing inputrc %s: %w", path, err)
	}
	return rc, nil
}

// ParseInputrc decodes a YAML document and expands ${VAR} references in
// variable values.
func ParseInputrc(data []byte) (*Inputrc, error) {
	var rc Inputrc
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return nil, err
	}
	ResolveEnvVars(&rc)
	return &rc, nil
}

// For returns the effective section for appName: top-level values with the
// application's section applied on top.
func (rc *Inputrc) For(appName string) Section {
	out := Section{
		Variables: maps.Clone(rc.Variables),
		Bindings:  maps.Clone(rc.Bindings),
	}
	if out.Variables == nil {
		out.Variables = map[string]string{}
	}
	if out.Bindings == nil {
		out.Bindings = map[string][]string{}
	}
	if app, ok := rc.Applications[appName]; ok && app != nil {
		maps.Copy(out.Variables, app.Variables)
		maps.Copy(out.Bindings, app.Bindings)
	}
	return out
}

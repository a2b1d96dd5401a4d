package script

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyScript is returned for scripts without steps.
	ErrEmptyScript = errors.New("script: no steps")
	// ErrInvalidStep is returned for steps that are neither a set nor a submit.
	ErrInvalidStep = errors.New("script: invalid step")
)

// Script is an ordered list of user events.
type Script struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Steps []Step `json:"steps" yaml:"steps"`
}

// Step is one event: either a field edit or a submit request.
type Step struct {
	Set    *SetStep `json:"set,omitempty" yaml:"set,omitempty"`
	Submit bool     `json:"submit,omitempty" yaml:"submit,omitempty"`
}

// SetStep replaces the value of a field.
type SetStep struct {
	Field string `json:"field" yaml:"field"`
	Value string `json:"value" yaml:"value"`
}

// Parse decodes a JSON or YAML script. source names the input in errors.
func Parse(data []byte, source string) (Script, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Script{}, fmt.Errorf("script: %s is empty", source)
	}

	var s Script
	if err := json.Unmarshal(data, &s); err != nil {
		s = Script{}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Script{}, fmt.Errorf("script: parse %s: invalid JSON or YAML: %w", source, err)
		}
	}
	if err := s.Validate(); err != nil {
		return Script{}, fmt.Errorf("%s: %w", source, err)
	}
	return s, nil
}

// LoadFS reads and parses the script at path inside fsys.
func LoadFS(fsys fs.FS, path string) (Script, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Script{}, fmt.Errorf("script: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Validate checks that every step is well formed.
func (s Script) Validate() error {
	if len(s.Steps) == 0 {
		return ErrEmptyScript
	}
	for i, step := range s.Steps {
		switch {
		case step.Set != nil && step.Submit:
			return fmt.Errorf("%w: step %d sets and submits", ErrInvalidStep, i+1)
		case step.Set != nil:
			if strings.TrimSpace(step.Set.Field) == "" {
				return fmt.Errorf("%w: step %d has no field", ErrInvalidStep, i+1)
			}
		case !step.Submit:
			return fmt.Errorf("%w: step %d is empty", ErrInvalidStep, i+1)
		}
	}
	return nil
}

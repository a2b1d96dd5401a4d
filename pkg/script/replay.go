package script

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formguard/pkg/signup"
	"github.com/goliatone/go-formguard/pkg/validation"
)

const masked = "********"

// Target is the form a script is replayed against. *signup.Form satisfies it.
type Target interface {
	Specs() []signup.Spec
	Set(id, value string) ([]validation.Result, error)
	Message(id string) string
	Submit() signup.Submission
}

// Frame captures the form after one step. Messages holds every non-empty
// field message; secret values are masked.
type Frame struct {
	Step     int               `json:"step" yaml:"step"`
	Action   string            `json:"action" yaml:"action"`
	Field    string            `json:"field,omitempty" yaml:"field,omitempty"`
	Value    string            `json:"value,omitempty" yaml:"value,omitempty"`
	Messages map[string]string `json:"messages,omitempty" yaml:"messages,omitempty"`
	Valid    *bool             `json:"valid,omitempty" yaml:"valid,omitempty"`
	Focused  string            `json:"focused,omitempty" yaml:"focused,omitempty"`
	Banner   string            `json:"banner,omitempty" yaml:"banner,omitempty"`
}

// Transcript is the frame-by-frame record of a replay.
type Transcript struct {
	Name   string  `json:"name,omitempty" yaml:"name,omitempty"`
	Frames []Frame `json:"frames" yaml:"frames"`
}

// Replay applies every step of s to target and records a frame per step.
func Replay(target Target, s Script) (Transcript, error) {
	if err := s.Validate(); err != nil {
		return Transcript{}, err
	}

	specs := target.Specs()
	secret := make(map[string]bool, len(specs))
	for _, spec := range specs {
		secret[spec.ID] = spec.Secret
	}

	out := Transcript{Name: s.Name, Frames: make([]Frame, 0, len(s.Steps))}
	for i, step := range s.Steps {
		frame := Frame{Step: i + 1}
		if step.Set != nil {
			frame.Action = "set"
			frame.Field = step.Set.Field
			frame.Value = step.Set.Value
			if secret[step.Set.Field] && frame.Value != "" {
				frame.Value = masked
			}
			if _, err := target.Set(step.Set.Field, step.Set.Value); err != nil {
				return out, fmt.Errorf("script: step %d: %w", i+1, err)
			}
		} else {
			frame.Action = "submit"
			sub := target.Submit()
			valid := sub.Valid
			frame.Valid = &valid
			frame.Focused = sub.Focused
			frame.Banner = sub.Banner
		}
		frame.Messages = messages(target, specs)
		out.Frames = append(out.Frames, frame)
	}
	return out, nil
}

func messages(target Target, specs []signup.Spec) map[string]string {
	var out map[string]string
	for _, spec := range specs {
		msg := target.Message(spec.ID)
		if msg == "" {
			continue
		}
		if out == nil {
			out = make(map[string]string)
		}
		out[spec.ID] = msg
	}
	return out
}

// WriteYAML encodes the transcript as YAML.
func (t Transcript) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("script: encode transcript: %w", err)
	}
	return enc.Close()
}

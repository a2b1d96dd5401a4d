package tui

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formguard/pkg/signup"
	"github.com/goliatone/go-formguard/pkg/validation"
)

// Form is the surface a Session drives. *signup.Form satisfies it.
type Form interface {
	Specs() []signup.Spec
	Value(id string) string
	Set(id, value string) ([]validation.Result, error)
	Submit() signup.Submission
}

// Session walks a user through a form in a terminal. Every answer is applied
// with Form.Set and the messages of the field and its dependents are printed
// straight away. Submitting re-prompts the focused field until the form is
// valid or the user declines.
type Session struct {
	driver   PromptDriver
	theme    Theme
	pageSize int
}

// NewSession builds a session. Without WithPromptDriver it prompts through
// survey on the current terminal.
func NewSession(options ...Option) *Session {
	s := &Session{theme: DefaultTheme}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	return s
}

// Run prompts every field in display order and then loops on submit.
func (s *Session) Run(ctx context.Context, form Form) (signup.Submission, error) {
	specs := form.Specs()
	labels := make(map[string]string, len(specs))
	byID := make(map[string]signup.Spec, len(specs))
	for _, spec := range specs {
		labels[spec.ID] = spec.Label
		byID[spec.ID] = spec
	}

	for _, spec := range specs {
		if err := s.ask(ctx, form, spec, labels); err != nil {
			return signup.Submission{}, err
		}
	}

	for {
		ok, err := s.driver.Confirm(ctx, ConfirmConfig{Message: s.theme.PromptPrefix + "Submit?", Default: true})
		if err != nil {
			return signup.Submission{}, err
		}
		if !ok {
			return signup.Submission{}, ErrDeclined
		}

		sub := form.Submit()
		if sub.Valid {
			if sub.Banner != "" {
				if err := s.driver.Info(ctx, s.theme.InfoPrefix+sub.Banner); err != nil {
					return sub, err
				}
			}
			return sub, nil
		}
		if err := s.report(ctx, sub.Results, labels); err != nil {
			return sub, err
		}

		spec, found := byID[sub.Focused]
		if !found {
			spec, found = byID[sub.FirstInvalid]
		}
		if !found {
			return sub, fmt.Errorf("tui: no prompt for field %q", sub.FirstInvalid)
		}
		if err := s.ask(ctx, form, spec, labels); err != nil {
			return sub, err
		}
	}
}

func (s *Session) ask(ctx context.Context, form Form, spec signup.Spec, labels map[string]string) error {
	value, err := s.prompt(ctx, spec, form.Value(spec.ID))
	if err != nil {
		return err
	}
	results, err := form.Set(spec.ID, value)
	if err != nil {
		return fmt.Errorf("tui: set %s: %w", spec.ID, err)
	}
	return s.report(ctx, results, labels)
}

func (s *Session) prompt(ctx context.Context, spec signup.Spec, current string) (string, error) {
	message := s.theme.PromptPrefix + spec.Label
	switch {
	case len(spec.Options) > 0:
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      spec.Options,
			DefaultIndex: indexOf(spec.Options, current),
			PageSize:     s.pageSize,
		})
		if err != nil {
			return "", err
		}
		if idx < 0 || idx >= len(spec.Options) {
			return "", ErrInvalidSelection
		}
		return spec.Options[idx], nil
	case spec.Secret:
		return s.driver.Password(ctx, InputConfig{Message: message})
	default:
		return s.driver.Input(ctx, InputConfig{Message: message, Default: current})
	}
}

func (s *Session) report(ctx context.Context, results []validation.Result, labels map[string]string) error {
	for _, result := range results {
		if result.Valid || result.Message == "" {
			continue
		}
		label := labels[result.FieldID]
		if label == "" {
			label = result.FieldID
		}
		if err := s.driver.Info(ctx, fmt.Sprintf("%s%s: %s", s.theme.ErrorPrefix, label, result.Message)); err != nil {
			return err
		}
	}
	return nil
}

package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formguard/pkg/rules"
	"github.com/goliatone/go-formguard/pkg/signup"
)

type stubDriver struct {
	inputs       []string
	passwords    []string
	selectIdx    []int
	confirm      []bool
	infoMessages []string
	inputCfgs    []InputConfig
	selectCfgs   []SelectConfig
	inputPos     int
	passPos      int
	selectPos    int
	confirmPos   int
	abortOn      string
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.abortOn == cfg.Message {
		return "", ErrAborted
	}
	s.inputCfgs = append(s.inputCfgs, cfg)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, _ InputConfig) (string, error) {
	if s.passPos >= len(s.passwords) {
		return "", errors.New("no password scripted")
	}
	val := s.passwords[s.passPos]
	s.passPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.selectCfgs = append(s.selectCfgs, cfg)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

var testTheme = Theme{InfoPrefix: "> ", ErrorPrefix: "! "}

func newSignup(t *testing.T) *signup.Form {
	t.Helper()
	form, err := signup.New()
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	return form
}

func TestSessionRunRepromptsUntilValid(t *testing.T) {
	t.Parallel()

	driver := &stubDriver{
		inputs:    []string{"user@example.com", "1234", "12345"},
		passwords: []string{"abc", "abc", "abc!", "abc!"},
		selectIdx: []int{6},
		confirm:   []bool{true, true, true, true},
	}
	session := NewSession(WithPromptDriver(driver), WithTheme(testTheme), WithPageSize(4))

	sub, err := session.Run(context.Background(), newSignup(t))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !sub.Valid || sub.Banner != signup.MessageSuccess {
		t.Fatalf("unexpected submission %+v", sub)
	}

	content := "! Password: " + signup.MessagePasswordContent
	confirmContent := "! Confirm password: " + signup.MessagePasswordContent
	mismatch := "! Confirm password: " + signup.MessagePasswordMismatch
	postal := "! Postal code: " + rules.PostalFormats["us"].Message
	want := []string{
		content, mismatch,
		confirmContent,
		postal,
		postal,
		content, confirmContent, postal,
		mismatch,
		mismatch, postal,
		postal,
		"> " + signup.MessageSuccess,
	}
	if diff := cmp.Diff(want, driver.infoMessages); diff != "" {
		t.Fatalf("info messages mismatch (-want +got):\n%s", diff)
	}

	if len(driver.selectCfgs) != 1 || driver.selectCfgs[0].PageSize != 4 || driver.selectCfgs[0].DefaultIndex != -1 {
		t.Fatalf("unexpected select config %+v", driver.selectCfgs)
	}
	if got := driver.inputCfgs[len(driver.inputCfgs)-1]; got.Message != "Postal code" || got.Default != "1234" {
		t.Fatalf("re-prompt must offer the current value, got %+v", got)
	}
}

func TestSessionRunDeclined(t *testing.T) {
	t.Parallel()

	driver := &stubDriver{
		inputs:    []string{"user@example.com", "12345"},
		passwords: []string{"abc!", "abc!"},
		selectIdx: []int{6},
		confirm:   []bool{false},
	}
	_, err := NewSession(WithPromptDriver(driver), WithTheme(testTheme)).Run(context.Background(), newSignup(t))
	if !errors.Is(err, ErrDeclined) {
		t.Fatalf("expected ErrDeclined, got %v", err)
	}
	want := []string{
		"! Confirm password: " + signup.MessagePasswordMismatch,
		"! Postal code: " + rules.PostalFormats["us"].Message,
	}
	if diff := cmp.Diff(want, driver.infoMessages); diff != "" {
		t.Fatalf("dependent messages mismatch (-want +got):\n%s", diff)
	}
}

func TestSessionRunAborted(t *testing.T) {
	t.Parallel()

	driver := &stubDriver{abortOn: "Email"}
	_, err := NewSession(WithPromptDriver(driver)).Run(context.Background(), newSignup(t))
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestSessionRunInvalidSelection(t *testing.T) {
	t.Parallel()

	driver := &stubDriver{
		inputs:    []string{"user@example.com"},
		passwords: []string{"abc!", "abc!"},
		selectIdx: []int{42},
	}
	_, err := NewSession(WithPromptDriver(driver)).Run(context.Background(), newSignup(t))
	if !errors.Is(err, ErrInvalidSelection) {
		t.Fatalf("expected ErrInvalidSelection, got %v", err)
	}
}

func TestTranslateSurveyErr(t *testing.T) {
	t.Parallel()

	if err := translateSurveyErr(fmt.Errorf("ask: %w", terminal.InterruptErr)); !errors.Is(err, ErrAborted) {
		t.Fatalf("interrupt must map to ErrAborted, got %v", err)
	}
	other := errors.New("boom")
	if err := translateSurveyErr(other); err != other {
		t.Fatalf("other errors pass through, got %v", err)
	}
}

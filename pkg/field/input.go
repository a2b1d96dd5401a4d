package field

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func sharedValidate() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// InputOption configures an Input.
type InputOption func(*Input)

// WithConstraint sets the native constraint as a validator tag, for example
// "required,email" or "required,max=64". Tags are developer input; an unknown
// tag panics on first check, the same way validator.Var does.
func WithConstraint(tag string) InputOption {
	return func(in *Input) {
		in.constraint = strings.TrimSpace(tag)
	}
}

// WithValue seeds the initial value. Reset restores it.
func WithValue(value string) InputOption {
	return func(in *Input) {
		in.value = value
		in.initial = value
	}
}

// WithFocusTracker attaches the tracker that records report/focus calls.
func WithFocusTracker(tracker *FocusTracker) InputOption {
	return func(in *Input) {
		in.focus = tracker
	}
}

// WithValidate overrides the validator instance, useful when callers register
// their own tags.
func WithValidate(v *validator.Validate) InputOption {
	return func(in *Input) {
		if v != nil {
			in.validate = v
		}
	}
}

// Input is the in-memory Field used by the engine, the TUI and the replay
// tooling. Native constraints run through go-playground/validator.
type Input struct {
	id         string
	value      string
	initial    string
	constraint string
	custom     string
	validate   *validator.Validate
	focus      *FocusTracker
}

var (
	_ Field    = (*Input)(nil)
	_ Setter   = (*Input)(nil)
	_ Resetter = (*Input)(nil)
)

// NewInput constructs an Input identified by id.
func NewInput(id string, options ...InputOption) *Input {
	in := &Input{id: strings.TrimSpace(id)}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(in)
	}
	if in.validate == nil {
		in.validate = sharedValidate()
	}
	return in
}

// ID returns the field identifier.
func (in *Input) ID() string { return in.id }

// Value returns the current value.
func (in *Input) Value() string { return in.value }

// SetValue replaces the current value. It does not revalidate; the host
// notifies the form afterwards.
func (in *Input) SetValue(value string) { in.value = value }

// Constraint returns the native constraint tag.
func (in *Input) Constraint() string { return in.constraint }

// Reset restores the initial value and clears any custom validity.
func (in *Input) Reset() {
	in.value = in.initial
	in.custom = ""
}

// SetCustomValidity marks the field invalid with msg until it is cleared with
// an empty string.
func (in *Input) SetCustomValidity(msg string) { in.custom = msg }

// CheckValidity reports whether the field satisfies its native constraint and
// carries no custom validity message.
func (in *Input) CheckValidity() bool {
	return in.ValidationMessage() == ""
}

// ValidationMessage returns the custom validity message when set, otherwise
// the message for the first failing native constraint, or "".
func (in *Input) ValidationMessage() string {
	if in.custom != "" {
		return in.custom
	}
	return in.nativeMessage()
}

// ReportValidity checks the field and, when invalid, surfaces its message and
// claims focus through the attached tracker.
func (in *Input) ReportValidity() bool {
	msg := in.ValidationMessage()
	valid := msg == ""
	if in.focus != nil {
		in.focus.record(in.id, valid, msg)
	}
	return valid
}

func (in *Input) nativeMessage() string {
	if in.constraint == "" {
		return ""
	}
	err := in.validate.Var(in.value, in.constraint)
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return messageFor(verrs[0], in.value)
	}
	return err.Error()
}

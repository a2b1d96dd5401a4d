package signup

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formguard/pkg/field"
	"github.com/goliatone/go-formguard/pkg/rules"
	"github.com/goliatone/go-formguard/pkg/validation"
)

// Field identifiers in display order.
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldPasswordConfirm = "password-confirm"
	FieldCountry         = "country"
	FieldPostalCode      = "postal-code"
)

// Messages owned by the signup form's custom rules.
const (
	MessagePasswordContent  = "Password must contain either '!' or '@'."
	MessagePasswordMismatch = "Both passwords must match."
	MessageCountryFirst     = "Select a country first."
	MessageSuccess          = "High five!"
)

// Spec describes how a host should present a field.
type Spec struct {
	ID      string   `json:"id" yaml:"id"`
	Label   string   `json:"label" yaml:"label"`
	Secret  bool     `json:"secret,omitempty" yaml:"secret,omitempty"`
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`
}

// SinkFactory builds the error sink for a field.
type SinkFactory func(fieldID string) field.Sink

// Option configures the signup form.
type Option func(*config)

type config struct {
	sinks    SinkFactory
	observer validation.Observer
	formats  rules.Formats
	tracker  *field.FocusTracker
}

// WithSinkFactory overrides the default in-memory sinks.
func WithSinkFactory(factory SinkFactory) Option {
	return func(c *config) {
		if factory != nil {
			c.sinks = factory
		}
	}
}

// WithObserver attaches an engine observer (logging, metrics).
func WithObserver(observer validation.Observer) Option {
	return func(c *config) {
		c.observer = observer
	}
}

// WithPostalFormats replaces the postal formats table. Its regions also
// become the allowed country values.
func WithPostalFormats(formats rules.Formats) Option {
	return func(c *config) {
		if len(formats) > 0 {
			c.formats = formats
		}
	}
}

// WithFocusTracker shares a focus tracker with the host.
func WithFocusTracker(tracker *field.FocusTracker) Option {
	return func(c *config) {
		if tracker != nil {
			c.tracker = tracker
		}
	}
}

// Submission is the result of a submit request.
type Submission struct {
	validation.Outcome
	// Focused is the field left holding focus, empty when valid.
	Focused string `json:"focused,omitempty" yaml:"focused,omitempty"`
	// Banner is the success text shown after a valid submission.
	Banner string `json:"banner,omitempty" yaml:"banner,omitempty"`
}

// Form is the signup form: email, password with confirmation, country and a
// postal code whose format depends on the country.
type Form struct {
	form   *validation.Form
	focus  *field.FocusTracker
	inputs map[string]*field.Input
	sinks  map[string]field.Sink
	specs  []Spec
}

// New builds and wires the signup form.
func New(options ...Option) (*Form, error) {
	cfg := config{
		sinks:   func(string) field.Sink { return &field.MemorySink{} },
		formats: rules.PostalFormats,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.tracker == nil {
		cfg.tracker = field.NewFocusTracker()
	}

	var formOpts []validation.FormOption
	if cfg.observer != nil {
		formOpts = append(formOpts, validation.WithFormObserver(cfg.observer))
	}

	f := &Form{
		form:   validation.NewForm(formOpts...),
		focus:  cfg.tracker,
		inputs: make(map[string]*field.Input),
		sinks:  make(map[string]field.Sink),
	}

	regions := cfg.formats.Regions()
	content := rules.ContainsAny("!@", MessagePasswordContent)

	steps := []struct {
		spec       Spec
		constraint string
		rules      []rules.Rule
	}{
		{
			spec:       Spec{ID: FieldEmail, Label: "Email"},
			constraint: "required,email",
			rules:      []rules.Rule{rules.Native()},
		},
		{
			spec:       Spec{ID: FieldPassword, Label: "Password", Secret: true},
			constraint: "required,max=64",
			rules:      []rules.Rule{rules.Native(), content},
		},
		{
			spec:       Spec{ID: FieldPasswordConfirm, Label: "Confirm password", Secret: true},
			constraint: "required,max=64",
			rules: []rules.Rule{
				rules.MatchesField(FieldPassword, MessagePasswordMismatch),
				rules.Native(),
				rules.Mirror(content),
			},
		},
		{
			spec:       Spec{ID: FieldCountry, Label: "Country", Options: regions},
			constraint: "required,oneof=" + strings.Join(regions, " "),
			rules:      []rules.Rule{rules.Native()},
		},
		{
			spec:       Spec{ID: FieldPostalCode, Label: "Postal code"},
			constraint: "max=10",
			rules: []rules.Rule{
				rules.Native(),
				rules.Prerequisite(FieldCountry, MessageCountryFirst),
				rules.RegionFormat(FieldCountry, cfg.formats),
			},
		},
	}

	for _, step := range steps {
		in := field.NewInput(step.spec.ID,
			field.WithConstraint(step.constraint),
			field.WithFocusTracker(cfg.tracker),
		)
		sink := cfg.sinks(step.spec.ID)
		if _, err := f.form.Add(in, sink, step.rules...); err != nil {
			return nil, fmt.Errorf("signup: add %s: %w", step.spec.ID, err)
		}
		f.inputs[in.ID()] = in
		f.sinks[in.ID()] = sink
		f.specs = append(f.specs, step.spec)
	}

	for _, edge := range []validation.Edge{
		{Source: FieldPassword, Dependent: FieldPasswordConfirm},
		{Source: FieldCountry, Dependent: FieldPostalCode},
	} {
		if err := f.form.Depend(edge.Source, edge.Dependent); err != nil {
			return nil, fmt.Errorf("signup: depend %s -> %s: %w", edge.Source, edge.Dependent, err)
		}
	}

	return f, nil
}

// Engine returns the underlying validation form.
func (f *Form) Engine() *validation.Form { return f.form }

// Focus returns the focus tracker shared by every field.
func (f *Form) Focus() *field.FocusTracker { return f.focus }

// Specs returns the presentation metadata in display order.
func (f *Form) Specs() []Spec {
	return append([]Spec(nil), f.specs...)
}

// Input returns the input for id.
func (f *Form) Input(id string) (*field.Input, bool) {
	in, ok := f.inputs[id]
	return in, ok
}

// Sink returns the error sink for id.
func (f *Form) Sink(id string) (field.Sink, bool) {
	sink, ok := f.sinks[id]
	return sink, ok
}

// Set handles user input for a field.
func (f *Form) Set(id, value string) ([]validation.Result, error) {
	return f.form.Set(id, value)
}

// Value returns the current value of id.
func (f *Form) Value(id string) string {
	value, _ := f.form.Lookup(id)
	return value
}

// Message returns the message currently shown for id.
func (f *Form) Message(id string) string {
	result, _ := f.form.Result(id)
	return result.Message
}

// Submit validates every field. A valid submission shows the success banner
// and resets the form; an invalid one leaves focus on the first invalid field.
func (f *Form) Submit() Submission {
	f.focus.Reset()
	outcome := f.form.Submit()
	sub := Submission{Outcome: outcome, Focused: f.focus.Focused()}
	if outcome.Valid {
		sub.Banner = MessageSuccess
		f.form.Reset()
	}
	return sub
}

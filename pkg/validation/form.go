package validation

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formguard/pkg/field"
	"github.com/goliatone/go-formguard/pkg/rules"
)

// Outcome summarises a submission.
type Outcome struct {
	Valid bool `json:"valid" yaml:"valid"`
	// FirstInvalid is the first invalid field in display order, which is the
	// field left holding focus.
	FirstInvalid string `json:"firstInvalid,omitempty" yaml:"firstInvalid,omitempty"`
	// Results holds every field's result in display order.
	Results []Result `json:"results" yaml:"results"`
}

// FormOption configures a Form.
type FormOption func(*Form)

// WithFormObserver attaches an observer to the form, its validators and its
// dependency graph.
func WithFormObserver(observer Observer) FormOption {
	return func(f *Form) {
		if observer != nil {
			f.observer = observer
		}
	}
}

// Form coordinates the validators of one form: it keeps them in display
// order, routes value changes through the dependency graph and runs the
// submission aggregation.
type Form struct {
	order    []*Validator
	index    map[string]*Validator
	graph    *Graph
	observer Observer
}

// NewForm returns an empty form.
func NewForm(options ...FormOption) *Form {
	f := &Form{
		index:    make(map[string]*Validator),
		observer: NopObserver{},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	f.graph = NewGraph(WithGraphObserver(f.observer))
	return f
}

// Add registers a field at the end of the display order. The validator reads
// other fields' values through the form.
func (f *Form) Add(fld field.Field, sink field.Sink, ruleList ...rules.Rule) (*Validator, error) {
	if fld == nil {
		return nil, fmt.Errorf("%w: nil field", ErrUnknownField)
	}
	v := New(fld, sink, ruleList, WithLookup(f), WithObserver(f.observer))
	if err := f.graph.Register(v); err != nil {
		return nil, err
	}
	f.order = append(f.order, v)
	f.index[v.ID()] = v
	return v, nil
}

// Depend declares that dependent is revalidated whenever source changes.
// Both fields must already be added.
func (f *Form) Depend(source, dependent string) error {
	return f.graph.AddEdge(source, dependent)
}

// Lookup returns the current value of a registered field.
func (f *Form) Lookup(id string) (string, bool) {
	v, ok := f.index[strings.TrimSpace(id)]
	if !ok {
		return "", false
	}
	return v.field.Value(), true
}

// Changed handles a value-changed notification: the field is revalidated and
// the change is pushed to its dependents. The field's own result comes first.
func (f *Form) Changed(id string) ([]Result, error) {
	v, ok := f.index[strings.TrimSpace(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, id)
	}
	results := []Result{v.Revalidate()}
	results = append(results, f.graph.OnValueChanged(v.ID())...)
	return results, nil
}

// Set assigns a value to a settable field and then behaves like Changed.
func (f *Form) Set(id, value string) ([]Result, error) {
	v, ok := f.index[strings.TrimSpace(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, id)
	}
	setter, ok := v.field.(field.Setter)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrReadOnlyField, id)
	}
	setter.SetValue(value)
	return f.Changed(v.ID())
}

// Submit reports every field in reverse display order and summarises the
// outcome.
func (f *Form) Submit() Outcome {
	valid := Submit(f.order)
	outcome := Outcome{Valid: valid, Results: make([]Result, 0, len(f.order))}
	for _, v := range f.order {
		result, _ := v.Last()
		outcome.Results = append(outcome.Results, result)
		if !result.Valid && outcome.FirstInvalid == "" {
			outcome.FirstInvalid = result.FieldID
		}
	}
	f.observer.OnSubmit(outcome)
	return outcome
}

// Reset restores resettable fields and clears every sink.
func (f *Form) Reset() {
	for _, v := range f.order {
		if r, ok := v.field.(field.Resetter); ok {
			r.Reset()
		}
		v.Clear()
	}
}

// Result returns the last result of a field.
func (f *Form) Result(id string) (Result, bool) {
	v, ok := f.index[strings.TrimSpace(id)]
	if !ok {
		return Result{}, false
	}
	return v.Last()
}

// Validator returns the validator registered for id.
func (f *Form) Validator(id string) (*Validator, bool) {
	v, ok := f.index[strings.TrimSpace(id)]
	return v, ok
}

// Fields returns the field identifiers in display order.
func (f *Form) Fields() []string {
	out := make([]string, len(f.order))
	for i, v := range f.order {
		out[i] = v.ID()
	}
	return out
}

// Dependents returns the fields revalidated when id changes.
func (f *Form) Dependents(id string) []string {
	return f.graph.Dependents(id)
}

// Edges returns the declared dependency edges.
func (f *Form) Edges() []Edge {
	return f.graph.Edges()
}

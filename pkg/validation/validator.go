package validation

import (
	"github.com/goliatone/go-formguard/pkg/field"
	"github.com/goliatone/go-formguard/pkg/rules"
)

// Option configures a Validator.
type Option func(*Validator)

// WithLookup supplies the values of other fields to the rules.
func WithLookup(lookup rules.Lookup) Option {
	return func(v *Validator) {
		v.values = lookup
	}
}

// WithObserver attaches an observer notified after every evaluation.
func WithObserver(observer Observer) Option {
	return func(v *Validator) {
		if observer != nil {
			v.observer = observer
		}
	}
}

// Validator owns one field's ordered rule list and keeps the field's error
// sink in step with the last evaluation.
type Validator struct {
	field    field.Field
	sink     field.Sink
	rules    []rules.Rule
	values   rules.Lookup
	observer Observer

	last      Result
	evaluated bool
}

// New builds a Validator for f. Rules run in the given order; when the list
// has no native rule one is appended so the native constraint is never
// skipped.
func New(f field.Field, sink field.Sink, ruleList []rules.Rule, options ...Option) *Validator {
	v := &Validator{
		field:    f,
		sink:     sink,
		rules:    withNative(ruleList),
		observer: NopObserver{},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(v)
	}
	return v
}

func withNative(ruleList []rules.Rule) []rules.Rule {
	out := make([]rules.Rule, 0, len(ruleList)+1)
	hasNative := false
	for _, r := range ruleList {
		if r.Kind == rules.KindNative {
			hasNative = true
		}
		out = append(out, r)
	}
	if !hasNative {
		out = append(out, rules.Native())
	}
	return out
}

// ID returns the identifier of the validated field.
func (v *Validator) ID() string { return v.field.ID() }

// Field returns the validated field.
func (v *Validator) Field() field.Field { return v.field }

// Rules returns the rule names in evaluation order.
func (v *Validator) Rules() []string {
	names := make([]string, len(v.rules))
	for i, r := range v.rules {
		names[i] = r.Name
	}
	return names
}

// Revalidate evaluates the rule list top to bottom and stops at the first
// failure. The failing rule's message is written to the sink (or "" when
// every rule passes). A failing custom rule also becomes the field's custom
// validity so the native capability reports the field invalid.
func (v *Validator) Revalidate() Result {
	v.field.SetCustomValidity("")

	value := v.field.Value()
	ctx := rules.Context{Field: v.field, Values: v.values}
	result := Result{FieldID: v.field.ID(), Valid: true}

	for _, rule := range v.rules {
		ok, msg := rule.Evaluate(value, ctx)
		if ok {
			continue
		}
		if msg == "" {
			msg = field.MessageFormat
		}
		if rule.Kind == rules.KindCustom {
			v.field.SetCustomValidity(msg)
		}
		result = Result{FieldID: v.field.ID(), Valid: false, Message: msg, Rule: rule.Name}
		break
	}

	if v.sink != nil {
		v.sink.SetMessage(result.Message)
	}
	v.last = result
	v.evaluated = true
	v.observer.OnRevalidate(result)
	return result
}

// ReportOnSubmit revalidates and then asks the field to report itself, which
// claims focus when the field is invalid.
func (v *Validator) ReportOnSubmit() bool {
	v.Revalidate()
	return v.field.ReportValidity()
}

// Last returns the most recent result. The boolean is false until the field
// has been evaluated, and again after Clear.
func (v *Validator) Last() (Result, bool) {
	return v.last, v.evaluated
}

// Clear empties the sink and forgets the last result.
func (v *Validator) Clear() {
	v.field.SetCustomValidity("")
	if v.sink != nil {
		v.sink.SetMessage("")
	}
	v.last = Result{}
	v.evaluated = false
}

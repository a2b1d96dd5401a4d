package rules

import (
	"strings"

	"github.com/goliatone/go-formguard/pkg/field"
)

// Kind distinguishes custom rules from the native constraint fallback.
type Kind int

const (
	// KindCustom rules set the field's custom validity when they fail so the
	// native capability reflects the failure.
	KindCustom Kind = iota
	// KindNative defers to the field's own constraint check and message.
	KindNative
)

func (k Kind) String() string {
	switch k {
	case KindNative:
		return "native"
	default:
		return "custom"
	}
}

// Lookup resolves the current value of another field.
type Lookup interface {
	Lookup(id string) (string, bool)
}

// Values is a static Lookup backed by a map.
type Values map[string]string

// Lookup returns the value stored under id.
func (v Values) Lookup(id string) (string, bool) {
	value, ok := v[id]
	return value, ok
}

// Context is what a predicate may read besides the value under test.
type Context struct {
	Field  field.Field
	Values Lookup
}

// Value returns the value of another field, or "" when unknown.
func (c Context) Value(id string) string {
	if c.Values == nil {
		return ""
	}
	value, _ := c.Values.Lookup(id)
	return value
}

// Predicate reports whether value passes. Predicates are total: they never
// panic and never return an error.
type Predicate func(value string, ctx Context) bool

// MessageFunc derives a failure message from the evaluation context.
type MessageFunc func(value string, ctx Context) string

// Rule is one entry of a field's ordered rule list.
type Rule struct {
	Name    string
	Kind    Kind
	Check   Predicate
	Message string
	// Describe, when set, replaces Message for the failing evaluation.
	Describe MessageFunc
}

// Evaluate runs the predicate and returns the failure message when it fails.
// A rule without a predicate passes.
func (r Rule) Evaluate(value string, ctx Context) (bool, string) {
	if r.Check == nil || r.Check(value, ctx) {
		return true, ""
	}
	if r.Describe != nil {
		if msg := r.Describe(value, ctx); msg != "" {
			return false, msg
		}
	}
	return false, r.Message
}

// Native is the native constraint check. It must be evaluated after the
// field's custom validity has been cleared, which the engine guarantees.
func Native() Rule {
	return Rule{
		Name: "native",
		Kind: KindNative,
		Check: func(_ string, ctx Context) bool {
			return ctx.Field == nil || ctx.Field.CheckValidity()
		},
		Describe: func(_ string, ctx Context) string {
			if ctx.Field == nil {
				return ""
			}
			return ctx.Field.ValidationMessage()
		},
		Message: field.MessageFormat,
	}
}

// ContainsAny requires value to contain at least one of chars.
func ContainsAny(chars, msg string) Rule {
	return Rule{
		Name: "contains-any",
		Kind: KindCustom,
		Check: func(value string, _ Context) bool {
			return strings.ContainsAny(value, chars)
		},
		Message: msg,
	}
}

// MatchesField requires value to equal the current value of source.
func MatchesField(source, msg string) Rule {
	return Rule{
		Name: "match:" + source,
		Kind: KindCustom,
		Check: func(value string, ctx Context) bool {
			return value == ctx.Value(source)
		},
		Message: msg,
	}
}

// Prerequisite requires the governing field to have a non-blank value.
func Prerequisite(governing, msg string) Rule {
	return Rule{
		Name: "prerequisite:" + governing,
		Kind: KindCustom,
		Check: func(_ string, ctx Context) bool {
			return strings.TrimSpace(ctx.Value(governing)) != ""
		},
		Message: msg,
	}
}

// Mirror reuses another field's custom rule against this field's value. The
// mirrored rule keeps its message so both fields report the same failure.
func Mirror(r Rule) Rule {
	r.Name = "mirror:" + r.Name
	r.Kind = KindCustom
	return r
}

// Package field defines the per-input capabilities the validation engine
// relies on: a native constraint check with its message, a custom validity
// override, an error message sink, and a report call that surfaces the error
// and claims focus. Input is the in-memory implementation; its native
// constraints are go-playground/validator tags.
package field

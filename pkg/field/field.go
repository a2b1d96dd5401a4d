package field

// Field is the capability set the validation engine needs from a single form
// input. It mirrors the browser constraint-validation API: a native check with
// its message, a custom validity override, and a report call that surfaces the
// error and claims focus when the field is invalid.
type Field interface {
	ID() string
	Value() string
	CheckValidity() bool
	ValidationMessage() string
	SetCustomValidity(msg string)
	ReportValidity() bool
}

// Setter is implemented by fields whose value can be changed by the host UI.
type Setter interface {
	SetValue(value string)
}

// Resetter is implemented by fields that can return to their initial state.
type Resetter interface {
	Reset()
}

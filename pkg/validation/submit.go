package validation

// Reporter is a field that can be validated and reported at submit time.
type Reporter interface {
	ReportOnSubmit() bool
}

// Submit reports every field, walking fieldsInDisplayOrder from the last
// entry to the first, and returns whether all of them are valid.
//
// Reporting claims focus for invalid fields, so the field reported last keeps
// it. Walking backwards leaves focus on the first invalid field in display
// order. Every field is reported, even after a failure, so that all error
// sinks are refreshed. The caller's slice is not modified.
func Submit[R Reporter](fieldsInDisplayOrder []R) bool {
	valid := true
	for i := len(fieldsInDisplayOrder) - 1; i >= 0; i-- {
		if !fieldsInDisplayOrder[i].ReportOnSubmit() {
			valid = false
		}
	}
	return valid
}

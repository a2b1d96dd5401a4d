package field

// Report is one ReportValidity call as seen by a FocusTracker.
type Report struct {
	FieldID string
	Valid   bool
	Message string
}

// FocusTracker stands in for the UI focus owner. Every invalid report claims
// focus, so after a sequence of reports the focused field is the last invalid
// one reported.
type FocusTracker struct {
	reports []Report
	focused string
	message string
}

// NewFocusTracker returns an empty tracker.
func NewFocusTracker() *FocusTracker {
	return &FocusTracker{}
}

func (t *FocusTracker) record(id string, valid bool, msg string) {
	t.reports = append(t.reports, Report{FieldID: id, Valid: valid, Message: msg})
	if !valid {
		t.focused = id
		t.message = msg
	}
}

// Focused returns the identifier of the field holding focus, or "".
func (t *FocusTracker) Focused() string {
	if t == nil {
		return ""
	}
	return t.focused
}

// Message returns the message surfaced by the focused field.
func (t *FocusTracker) Message() string {
	if t == nil {
		return ""
	}
	return t.message
}

// Reports returns a copy of the recorded reports in call order.
func (t *FocusTracker) Reports() []Report {
	if t == nil || len(t.reports) == 0 {
		return nil
	}
	return append([]Report(nil), t.reports...)
}

// Reset forgets recorded reports and releases focus.
func (t *FocusTracker) Reset() {
	if t == nil {
		return
	}
	t.reports = nil
	t.focused = ""
	t.message = ""
}

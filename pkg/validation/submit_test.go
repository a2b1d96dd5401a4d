package validation

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formguard/pkg/field"
)

type recordingReporter struct {
	id    string
	valid bool
	calls *[]string
}

func (r recordingReporter) ReportOnSubmit() bool {
	*r.calls = append(*r.calls, r.id)
	return r.valid
}

func TestSubmitReportsInReverseWithoutShortCircuit(t *testing.T) {
	t.Parallel()

	calls := &[]string{}
	fields := []recordingReporter{
		{id: "a", valid: false, calls: calls},
		{id: "b", valid: true, calls: calls},
		{id: "c", valid: false, calls: calls},
	}

	if Submit(fields) {
		t.Fatalf("expected invalid submission")
	}
	if diff := cmp.Diff([]string{"c", "b", "a"}, *calls); diff != "" {
		t.Fatalf("report order mismatch (-want +got):\n%s", diff)
	}
	if fields[0].id != "a" || fields[2].id != "c" {
		t.Fatalf("caller slice was reordered")
	}

	*calls = nil
	Submit(fields)
	if diff := cmp.Diff([]string{"c", "b", "a"}, *calls); diff != "" {
		t.Fatalf("second submission order mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmitEmptyAndAllValid(t *testing.T) {
	t.Parallel()

	if !Submit([]Reporter(nil)) {
		t.Fatalf("an empty form is valid")
	}
	calls := &[]string{}
	if !Submit([]recordingReporter{{id: "a", valid: true, calls: calls}, {id: "b", valid: true, calls: calls}}) {
		t.Fatalf("expected valid submission")
	}
}

func TestSubmitLeavesFirstInvalidFocused(t *testing.T) {
	t.Parallel()

	tracker := field.NewFocusTracker()
	form := NewForm()
	for _, spec := range []struct{ id, value string }{{"a", ""}, {"b", "ok"}, {"c", ""}} {
		in := field.NewInput(spec.id, field.WithConstraint("required"), field.WithValue(spec.value), field.WithFocusTracker(tracker))
		if _, err := form.Add(in, &field.MemorySink{}); err != nil {
			t.Fatal(err)
		}
	}

	outcome := form.Submit()
	if outcome.Valid {
		t.Fatalf("expected invalid outcome")
	}
	if tracker.Focused() != "a" {
		t.Fatalf("focused = %q, want a", tracker.Focused())
	}
	if outcome.FirstInvalid != "a" {
		t.Fatalf("first invalid = %q", outcome.FirstInvalid)
	}
	reports := tracker.Reports()
	if len(reports) != 3 || reports[len(reports)-1].FieldID != "a" {
		t.Fatalf("a must be reported last, got %+v", reports)
	}
}

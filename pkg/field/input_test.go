package field

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInputNativeConstraint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		constraint string
		value      string
		wantValid  bool
		wantPrefix string
	}{
		{name: "no constraint", value: "", wantValid: true},
		{name: "required empty", constraint: "required", value: "", wantPrefix: MessageRequired},
		{name: "required filled", constraint: "required", value: "x", wantValid: true},
		{name: "email missing at", constraint: "required,email", value: "nope", wantPrefix: "Please include an '@'"},
		{name: "email trailing at", constraint: "required,email", value: "nope@", wantPrefix: "Please enter a part following '@'"},
		{name: "email valid", constraint: "required,email", value: "user@example.com", wantValid: true},
		{name: "max exceeded", constraint: "max=3", value: "abcd", wantPrefix: "Please shorten this text to 3 characters"},
		{name: "oneof", constraint: "oneof=us cn", value: "zz", wantPrefix: MessageSelect},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := NewInput("f", WithConstraint(tt.constraint), WithValue(tt.value))
			if got := in.CheckValidity(); got != tt.wantValid {
				t.Fatalf("CheckValidity() = %v, want %v (message %q)", got, tt.wantValid, in.ValidationMessage())
			}
			msg := in.ValidationMessage()
			if tt.wantValid {
				if msg != "" {
					t.Fatalf("expected empty message, got %q", msg)
				}
				return
			}
			if !strings.HasPrefix(msg, tt.wantPrefix) {
				t.Fatalf("message %q does not start with %q", msg, tt.wantPrefix)
			}
		})
	}
}

func TestInputCustomValidityOverridesNative(t *testing.T) {
	t.Parallel()

	in := NewInput("pw", WithConstraint("required"), WithValue("abc"))
	if !in.CheckValidity() {
		t.Fatalf("expected natively valid input")
	}

	in.SetCustomValidity("custom failure")
	if in.CheckValidity() {
		t.Fatalf("custom validity must make the field invalid")
	}
	if got := in.ValidationMessage(); got != "custom failure" {
		t.Fatalf("ValidationMessage() = %q", got)
	}

	in.SetCustomValidity("")
	if !in.CheckValidity() {
		t.Fatalf("clearing custom validity should restore native validity")
	}
}

func TestInputReportValidityClaimsFocus(t *testing.T) {
	t.Parallel()

	tracker := NewFocusTracker()
	a := NewInput("a", WithConstraint("required"), WithFocusTracker(tracker))
	b := NewInput("b", WithConstraint("required"), WithValue("ok"), WithFocusTracker(tracker))
	c := NewInput("c", WithConstraint("required"), WithFocusTracker(tracker))

	c.ReportValidity()
	b.ReportValidity()
	a.ReportValidity()

	if got := tracker.Focused(); got != "a" {
		t.Fatalf("Focused() = %q, want a", got)
	}
	if got := tracker.Message(); got != MessageRequired {
		t.Fatalf("Message() = %q", got)
	}

	want := []Report{
		{FieldID: "c", Valid: false, Message: MessageRequired},
		{FieldID: "b", Valid: true},
		{FieldID: "a", Valid: false, Message: MessageRequired},
	}
	if diff := cmp.Diff(want, tracker.Reports()); diff != "" {
		t.Fatalf("reports mismatch (-want +got):\n%s", diff)
	}

	tracker.Reset()
	if tracker.Focused() != "" || tracker.Reports() != nil {
		t.Fatalf("expected tracker to be cleared")
	}
}

func TestInputReset(t *testing.T) {
	t.Parallel()

	in := NewInput("country", WithValue("us"))
	in.SetValue("cn")
	in.SetCustomValidity("bad")
	in.Reset()

	if in.Value() != "us" {
		t.Fatalf("Value() = %q, want us", in.Value())
	}
	if !in.CheckValidity() {
		t.Fatalf("reset should clear custom validity")
	}
}

func TestHTMLSinkSanitizes(t *testing.T) {
	t.Parallel()

	sink := NewHTMLSink("form-email")
	sink.SetMessage("<b>bad</b> value")

	got := sink.Text()
	if strings.Contains(got, "<b>") {
		t.Fatalf("markup survived sanitisation: %q", got)
	}
	if !strings.Contains(got, "bad") {
		t.Fatalf("text content lost: %q", got)
	}
	if !strings.HasPrefix(sink.HTML(), `<span class="error-msg" data-field="form-email">`) {
		t.Fatalf("unexpected fragment %q", sink.HTML())
	}

	sink.SetMessage("")
	if sink.Text() != "" {
		t.Fatalf("empty message should clear the sink")
	}
}

func TestSinkFuncAndMemorySink(t *testing.T) {
	t.Parallel()

	var got []string
	fn := SinkFunc(func(msg string) { got = append(got, msg) })
	fn.SetMessage("one")
	fn.SetMessage("")
	if diff := cmp.Diff([]string{"one", ""}, got); diff != "" {
		t.Fatalf("sink func mismatch (-want +got):\n%s", diff)
	}

	mem := &MemorySink{}
	mem.SetMessage("x")
	mem.SetMessage("y")
	if mem.Message() != "y" || mem.Writes() != 2 {
		t.Fatalf("memory sink = %q/%d", mem.Message(), mem.Writes())
	}
}

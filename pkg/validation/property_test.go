package validation

import (
	"fmt"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/goliatone/go-formguard/pkg/field"
	"github.com/goliatone/go-formguard/pkg/rules"
)

func TestRevalidateIsIdempotentProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		password := rapid.StringMatching(`[a-z!@]{0,10}`).Draw(t, "password")
		confirm := rapid.SampledFrom([]string{password, password + "x", ""}).Draw(t, "confirm")

		form := NewForm()
		content := rules.ContainsAny("!@", contentMsg)
		pw := field.NewInput("password", field.WithConstraint("required"), field.WithValue(password))
		pc := field.NewInput("password-confirm", field.WithConstraint("required"), field.WithValue(confirm))
		sink := &field.MemorySink{}
		if _, err := form.Add(pw, &field.MemorySink{}, rules.Native(), content); err != nil {
			t.Fatal(err)
		}
		v, err := form.Add(pc, sink, rules.MatchesField("password", "Both passwords must match."), rules.Native(), rules.Mirror(content))
		if err != nil {
			t.Fatal(err)
		}

		first := v.Revalidate()
		firstSink := sink.Message()
		second := v.Revalidate()
		if first != second {
			t.Fatalf("revalidate not idempotent: %+v vs %+v", first, second)
		}
		if sink.Message() != firstSink {
			t.Fatalf("sink changed between identical evaluations")
		}
		if first.Valid != (sink.Message() == "") {
			t.Fatalf("sink %q disagrees with validity %v", sink.Message(), first.Valid)
		}
		if confirm != password && first.Valid {
			t.Fatalf("mismatching confirmation reported valid")
		}
		if first.Valid && !strings.ContainsAny(password, "!@") {
			t.Fatalf("confirmation valid while the password fails its content rule")
		}
	})
}

func TestSubmitFocusesFirstInvalidProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		validity := rapid.SliceOfN(rapid.Bool(), 1, 12).Draw(t, "validity")

		tracker := field.NewFocusTracker()
		form := NewForm()
		want := ""
		for i, ok := range validity {
			id := fmt.Sprintf("f%d", i)
			value := ""
			if ok {
				value = "x"
			} else if want == "" {
				want = id
			}
			in := field.NewInput(id, field.WithConstraint("required"), field.WithValue(value), field.WithFocusTracker(tracker))
			if _, err := form.Add(in, &field.MemorySink{}); err != nil {
				t.Fatal(err)
			}
		}

		outcome := form.Submit()
		if outcome.Valid != (want == "") {
			t.Fatalf("valid = %v, want %v", outcome.Valid, want == "")
		}
		if tracker.Focused() != want {
			t.Fatalf("focused = %q, want %q", tracker.Focused(), want)
		}
		if len(tracker.Reports()) != len(validity) {
			t.Fatalf("every field must be reported, got %d of %d", len(tracker.Reports()), len(validity))
		}
	})
}

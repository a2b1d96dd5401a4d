// Package validation is the cross-field validation engine.
//
// A Validator owns one field's ordered rule list and writes exactly one
// message, the first failing rule's, to the field's sink. A Graph holds
// source -> dependent edges and revalidates the dependents of a changed field,
// one hop only, before returning. Submit reports every field in reverse
// display order so that the first invalid field in display order is the one
// left holding focus. Form ties the three together for a concrete form:
//
//	form := validation.NewForm()
//	_, _ = form.Add(password, pwSink, rules.Native(), rules.ContainsAny("!@", msg))
//	_, _ = form.Add(confirm, confirmSink,
//		rules.MatchesField("password", "Both passwords must match."),
//		rules.Native(),
//		rules.Mirror(rules.ContainsAny("!@", msg)),
//	)
//	_ = form.Depend("password", "password-confirm")
//
//	form.Set("password", "abc") // revalidates password and password-confirm
//	outcome := form.Submit()
//
// Everything runs synchronously on the caller's goroutine; a Form is not safe
// for concurrent use.
package validation

// Package signup wires the account signup form on top of the validation
// engine. Field kinds follow a fixed rule order:
//
//	email             native
//	password          native, contains '!' or '@'
//	password-confirm  matches password, native, contains '!' or '@'
//	country           native (one of the known postal regions)
//	postal-code       native, country selected, country-specific format
//
// password-confirm depends on password and postal-code depends on country,
// so editing the source refreshes the dependent's message immediately.
package signup

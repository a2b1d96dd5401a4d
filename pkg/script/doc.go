// Package script replays recorded user events against a form and captures
// what the user would have seen after each one.
//
// A script is JSON or YAML:
//
//	name: postal follows country
//	steps:
//	  - set: {field: postal-code, value: "1234"}
//	  - set: {field: country, value: us}
//	  - submit: true
package script

// formguard runs the signup form from a terminal.
//
// Usage:
//
//	# Fill in the form interactively
//	formguard prompt
//
//	# Replay recorded events and print what the user would have seen
//	formguard replay scripts/postal.yaml
//
// Settings come from FORMGUARD_* environment variables and an optional .env
// file; FORMGUARD_METRICS_ADDR exposes Prometheus metrics while running.
package main

func main() {
	Execute()
}

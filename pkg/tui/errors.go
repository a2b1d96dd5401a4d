package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrDeclined is returned when the user stops before a valid submission.
	ErrDeclined = errors.New("tui: submission declined")
	// ErrInvalidSelection is returned when a driver selects outside the options.
	ErrInvalidSelection = errors.New("tui: selection out of range")
)

// Package tui runs a form as an interactive terminal session on top of a
// PromptDriver. The default driver uses survey; tests script their own.
package tui

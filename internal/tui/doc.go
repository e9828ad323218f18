// Package tui holds the interactive prompts.
//
// Prompts run only when a human is at the terminal; DetectMode decides
// between the full-screen form, the plain line prompt and no prompt.
package tui

// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit  Action = "quit"
	ActionFetch Action = "fetch"
	ActionBurst Action = "burst"
	ActionSync  Action = "sync"

	// Error alert
	ActionAcknowledge Action = "acknowledge"
)

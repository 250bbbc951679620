// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants.
const (
	// Background jobs
	OpFetchFeed   Op = "fetch feed"
	OpSyncLibrary Op = "sync library"
	OpSaveState   Op = "save settings"

	// Startup
	OpConfigLoad Op = "load configuration"
	OpLogSetup   Op = "open log file"
	OpInitialize Op = "initialize application"

	// Desktop integration
	OpNotify Op = "send desktop notification"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// Error is an error annotated with the operation that produced it.
// Its message is the Format rendering, so it can be reported as-is.
type Error struct {
	Op      Op
	Context string
	Err     error
}

// Wrap annotates err with op. Returns nil when err is nil.
func Wrap(op Op, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

// WrapWith annotates err with op and a context such as a path or name.
func WrapWith(op Op, context string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Context: context, Err: err}
}

func (e *Error) Error() string {
	return FormatWith(e.Op, e.Context, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

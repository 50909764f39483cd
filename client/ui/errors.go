package ui

import "fmt"

// ActionableError carries a message that can be shown to the player as is.
type ActionableError struct {
	Message string
	// Cause is optional.
	Cause error
}

func (e *ActionableError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *ActionableError) Unwrap() error {
	return e.Cause
}

package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an operation names an unknown schedule.
	ErrNotFound = errors.New("schedule not found")

	// ErrTriggerRegistration is returned when the scheduling backend could
	// not install a recurring trigger. The schedule row stays pending.
	ErrTriggerRegistration = errors.New("trigger registration failed")
)

// ValidationError reports input rejected before any side effect took place.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

package solver

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for solve failures.
var (
	// ErrConfig indicates the configuration was rejected before any
	// field array was allocated.
	ErrConfig = errors.New("solver: invalid configuration")

	// ErrUnstable indicates the computation produced or was about to
	// produce non-finite values.
	ErrUnstable = errors.New("solver: numerical instability")
)

// ConfigError wraps ErrConfig with the validation summary.
type ConfigError struct {
	Summary string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s", ErrConfig, e.Summary)
}

func (e *ConfigError) Unwrap() error {
	return ErrConfig
}

// InstabilityError wraps ErrUnstable with the iteration and field that
// tripped the guard.
type InstabilityError struct {
	Iteration int
	Field     string
	Detail    string
}

func (e *InstabilityError) Error() string {
	return fmt.Sprintf("%v: %s in %s field at iteration %d",
		ErrUnstable, e.Detail, e.Field, e.Iteration)
}

func (e *InstabilityError) Unwrap() error {
	return ErrUnstable
}

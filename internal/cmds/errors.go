package cmds

import (
	"fmt"
	"math"
)

// ValidationError reports a malformed or out-of-range command field.
// The command tag and field name make the diagnostic stable and
// machine-matchable; the same invalid command always produces the same
// error.
type ValidationError struct {
	// Cmd is the wire tag of the offending command.
	Cmd string
	// Field is the wire name of the offending field.
	Field string
	// Message describes the violated constraint.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Cmd, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Cmd, e.Field, e.Message)
}

func fieldError(cmd, field, format string, args ...any) *ValidationError {
	return &ValidationError{Cmd: cmd, Field: field, Message: fmt.Sprintf(format, args...)}
}

// requireFinite rejects NaN and infinities, which have no wire form.
func requireFinite(cmd, field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fieldError(cmd, field, "must be finite, got %v", v)
	}
	return nil
}

// requirePositive accepts only finite values strictly greater than zero.
func requirePositive(cmd, field string, v float64) error {
	if err := requireFinite(cmd, field, v); err != nil {
		return err
	}
	if v <= 0 {
		return fieldError(cmd, field, "must be greater than zero, got %v", v)
	}
	return nil
}

// requireRange accepts finite values within [lo, hi].
func requireRange(cmd, field string, v, lo, hi float64) error {
	if err := requireFinite(cmd, field, v); err != nil {
		return err
	}
	if v < lo || v > hi {
		return fieldError(cmd, field, "must be in [%v, %v], got %v", lo, hi, v)
	}
	return nil
}

// wrapField attaches command/field context to a nested validation
// failure (unit values, points, colors).
func wrapField(cmd, field string, err error) error {
	if err == nil {
		return nil
	}
	return fieldError(cmd, field, "%v", err)
}

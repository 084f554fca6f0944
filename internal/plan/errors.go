package plan

import (
	"errors"
	"fmt"
)

// UnresolvedBindingError reports a reference to a name with no earlier
// binding. Step is the zero-based position of the referencing step.
type UnresolvedBindingError struct {
	Name string
	Step int
}

func (e *UnresolvedBindingError) Error() string {
	return fmt.Sprintf("step %d: unresolved binding %q", e.Step, e.Name)
}

// AsUnresolvedBinding extracts an UnresolvedBindingError if err carries
// one.
func AsUnresolvedBinding(err error) (*UnresolvedBindingError, bool) {
	var ube *UnresolvedBindingError
	if errors.As(err, &ube) {
		return ube, true
	}
	return nil, false
}

// CompileError reports a malformed step that is not a binding problem:
// a missing command, an unknown operation, a slot reference past the
// plan head.
type CompileError struct {
	Step    int
	Message string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("step %d: %s", e.Step, e.Message)
}

func compileErrorf(step int, format string, args ...any) *CompileError {
	return &CompileError{Step: step, Message: fmt.Sprintf(format, args...)}
}

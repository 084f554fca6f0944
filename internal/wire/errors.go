package wire

import (
	"errors"
	"fmt"
)

// UnknownVariantError reports a tag the decoder does not recognize.
// Kind says what was being decoded: "command", "response segment",
// "instruction".
type UnknownVariantError struct {
	Kind string
	Tag  string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown %s tag %q", e.Kind, e.Tag)
}

// AsUnknownVariant extracts an UnknownVariantError if err carries one.
func AsUnknownVariant(err error) (*UnknownVariantError, bool) {
	var uve *UnknownVariantError
	if errors.As(err, &uve) {
		return uve, true
	}
	return nil, false
}

// EncodingError reports malformed or truncated wire bytes. Decoders
// wrap every syntax-level failure in one so callers can distinguish
// transport corruption from unknown variants.
type EncodingError struct {
	Message string
	Err     error
}

func (e *EncodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *EncodingError) Unwrap() error { return e.Err }

func encodingErrorf(err error, format string, args ...any) *EncodingError {
	return &EncodingError{Message: fmt.Sprintf(format, args...), Err: err}
}

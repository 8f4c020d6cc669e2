package dict

import (
	"errors"
	"fmt"
)

// Error definitions for the dict package.
var (
	ErrNotFound       = errors.New("key not found")
	ErrRequiredNull   = errors.New("required key is null")
	ErrConversion     = errors.New("conversion failed")
	ErrUnexpectedType = errors.New("unexpected value type")
	ErrNotContainer   = errors.New("value is not a mapping or sequence")
)

// KeyError reports a lookup failure for a specific key.
type KeyError struct {
	Key any
	Err error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("dict: key %q: %v", fmt.Sprint(e.Key), e.Err)
}

func (e *KeyError) Unwrap() error {
	return e.Err
}

// ConversionError is returned when a required value fails to convert.
// It matches both ErrConversion and the converter's own error.
type ConversionError struct {
	Key any
	Err error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("dict: key %q: %v: %v", fmt.Sprint(e.Key), ErrConversion, e.Err)
}

func (e *ConversionError) Unwrap() []error {
	return []error{ErrConversion, e.Err}
}

package convert

import (
	"errors"
	"fmt"

	"github.com/ekisa-team/convdict/dict"
)

// Error definitions for the convert package.
var (
	ErrInvalid = errors.New("invalid value")
)

// invalid reports a value of the right kind that does not parse.
func invalid(v any, want string, cause error) error {
	if cause == nil {
		return fmt.Errorf("convert: %w: %v as %s", ErrInvalid, v, want)
	}

	return fmt.Errorf("convert: %w: %v as %s: %w", ErrInvalid, v, want, cause)
}

// unexpected reports a value of the wrong kind.
func unexpected(v any, want string) error {
	return fmt.Errorf("convert: %w: %T as %s", dict.ErrUnexpectedType, v, want)
}

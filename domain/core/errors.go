package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrInvalidParameter covers caller-supplied tuning values outside their
	// valid domain (factor, minimum cluster size).
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnsortedSegments indicates the segment list handed to the result
	// assembler violated the start-ascending ordering invariant.
	ErrUnsortedSegments = errors.New("segments out of order")

	// Input loading errors
	ErrMalformedInput = errors.New("malformed input")
	ErrEmptySource    = errors.New("empty input source")
)

// NewInvalidParameterError reports an invalid parameter with its name and value
func NewInvalidParameterError(name string, value interface{}) error {
	return fmt.Errorf("%w: %s = %v", ErrInvalidParameter, name, value)
}

// NewMalformedInputError reports a parse failure with source context
func NewMalformedInputError(source string, line int, err error) error {
	return fmt.Errorf("%w: %s line %d: %v", ErrMalformedInput, source, line, err)
}

// IsInvalidParameterError checks whether err stems from parameter validation
func IsInvalidParameterError(err error) bool {
	return errors.Is(err, ErrInvalidParameter)
}

// IsMalformedInputError checks whether err stems from input parsing
func IsMalformedInputError(err error) bool {
	return errors.Is(err, ErrMalformedInput)
}

package ac3

import (
	"errors"
	"fmt"
)

var (
	// ErrReservedCode matches every *DecodeError.
	ErrReservedCode = errors.New("ac3: reserved code value")
	// ErrShortHeader is returned when the cursor ran out of data mid-header.
	ErrShortHeader = errors.New("ac3: header truncated")
)

// DecodeError reports a header field holding a reserved or out-of-range code.
type DecodeError struct {
	Field string
	Value int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("ac3: reserved %s value %d", e.Field, e.Value)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrReservedCode
}

func shortHeader(what string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrShortHeader, what, err)
}

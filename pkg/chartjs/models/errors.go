package models

import (
	"errors"
	"fmt"
)

// ErrMalformedScalar indicates a JSON value that is not a number, string or
// empty-array placeholder where a text-backed scalar is expected.
var ErrMalformedScalar = errors.New("malformed scalar")

// ErrMalformedFunction indicates a function expression that cannot be parsed.
var ErrMalformedFunction = errors.New("malformed function expression")

// ScalarError represents a failure to decode a text-backed scalar.
type ScalarError struct {
	Type  string // "NumberString", "NumberOrDateString", "BoolString"
	Input string
	Err   error
}

func (e *ScalarError) Error() string {
	return fmt.Sprintf("cannot decode %s from %s: %v", e.Type, e.Input, e.Err)
}

func (e *ScalarError) Unwrap() error {
	return e.Err
}

func newScalarError(typ string, data []byte, err error) *ScalarError {
	input := string(data)
	if len(input) > 64 {
		input = input[:64] + "..."
	}
	return &ScalarError{
		Type:  typ,
		Input: input,
		Err:   err,
	}
}

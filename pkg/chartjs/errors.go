package chartjs

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrNoSeries indicates a chart has no series with a value range.
var ErrNoSeries = errors.New("chart has no series")

// ConversionError represents a failure to convert one chart.
type ConversionError struct {
	SheetName string
	Chart     string
	Err       error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion error in sheet %q (%s): %v", e.SheetName, e.Chart, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(sheetName, chart string, err error) *ConversionError {
	return &ConversionError{
		SheetName: sheetName,
		Chart:     chart,
		Err:       err,
	}
}

// Package models defines the typed Chart.js configuration tree.
//
// Leaf values that Chart.js accepts as either numbers or strings are stored as
// text and coerced on serialization: see [CoerceNumber] and [CoerceBool].
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NumberString is a text-backed value emitted as a JSON integer, float or
// string depending on what the text parses as.
type NumberString string

// NumberOrDateString is a NumberString used where Chart.js also accepts date
// strings (time scales, axis bounds, x values).
type NumberOrDateString string

// BoolString is a text-backed value emitted as a JSON boolean when the text is
// exactly "true" or "false", and as a string otherwise.
type BoolString string

// NewNumberString captures the textual form of v.
func NewNumberString(v any) NumberString { return NumberString(fmt.Sprint(v)) }

// NewNumberOrDateString captures the textual form of v.
func NewNumberOrDateString(v any) NumberOrDateString { return NumberOrDateString(fmt.Sprint(v)) }

// NewBoolString captures the textual form of v.
func NewBoolString(v any) BoolString { return BoolString(fmt.Sprint(v)) }

// CoerceNumber returns int64, float64 or string for text.
// Both the float and the integer parse are attempted; the integer wins when
// both succeed. Non-finite floats and hexadecimal literals stay strings.
func CoerceNumber(text string) any {
	f, ferr := parseFloat(text)
	i, ierr := strconv.ParseInt(text, 10, 64)
	switch {
	case ferr == nil && ierr == nil:
		return i
	case ferr == nil:
		return f
	default:
		return text
	}
}

// CoerceBool returns a bool for exactly "true" or "false" and text otherwise.
func CoerceBool(text string) any {
	switch text {
	case "true":
		return true
	case "false":
		return false
	}
	return text
}

func parseFloat(text string) (float64, error) {
	t := strings.TrimLeft(text, "+-")
	if len(t) > 1 && t[0] == '0' && (t[1] == 'x' || t[1] == 'X') {
		return 0, strconv.ErrSyntax
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrRange
	}
	return f, nil
}

func marshalCoerced(v any) ([]byte, error) {
	switch n := v.(type) {
	case int64:
		return strconv.AppendInt(nil, n, 10), nil
	case bool:
		return strconv.AppendBool(nil, n), nil
	}
	return json.Marshal(v)
}

// unmarshalScalar reads a JSON number, string or null-array placeholder into
// its text form. Booleans are accepted only when allowBool is set.
func unmarshalScalar(typ string, data []byte, allowBool bool) (string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return "", newScalarError(typ, data, ErrMalformedScalar)
	}
	switch c := trimmed[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", newScalarError(typ, data, err)
		}
		return s, nil
	case c == '-' || (c >= '0' && c <= '9'):
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return "", newScalarError(typ, data, err)
		}
		return n.String(), nil
	case c == '[':
		var placeholder []*struct{}
		if err := json.Unmarshal(trimmed, &placeholder); err != nil {
			return "", newScalarError(typ, data, ErrMalformedScalar)
		}
		for _, p := range placeholder {
			if p != nil {
				return "", newScalarError(typ, data, ErrMalformedScalar)
			}
		}
		return "", nil
	case allowBool && (c == 't' || c == 'f'):
		var b bool
		if err := json.Unmarshal(trimmed, &b); err != nil {
			return "", newScalarError(typ, data, err)
		}
		return strconv.FormatBool(b), nil
	}
	return "", newScalarError(typ, data, ErrMalformedScalar)
}

// IsEmpty reports whether the text is empty. "0" is not empty.
func (n NumberString) IsEmpty() bool { return n == "" }

// Compare orders by raw text, not by numeric value.
func (n NumberString) Compare(other NumberString) int { return strings.Compare(string(n), string(other)) }

func (n NumberString) String() string { return string(n) }

// Value returns the coerced form that MarshalJSON emits.
func (n NumberString) Value() any { return CoerceNumber(string(n)) }

// MarshalJSON implements json.Marshaler.
func (n NumberString) MarshalJSON() ([]byte, error) { return marshalCoerced(n.Value()) }

// UnmarshalJSON implements json.Unmarshaler.
func (n *NumberString) UnmarshalJSON(data []byte) error {
	s, err := unmarshalScalar("NumberString", data, false)
	if err != nil {
		return err
	}
	*n = NumberString(s)
	return nil
}

// IsEmpty reports whether the text is empty.
func (n NumberOrDateString) IsEmpty() bool { return n == "" }

// Compare orders by raw text, not by numeric or chronological value.
func (n NumberOrDateString) Compare(other NumberOrDateString) int {
	return strings.Compare(string(n), string(other))
}

func (n NumberOrDateString) String() string { return string(n) }

// Value returns the coerced form that MarshalJSON emits.
func (n NumberOrDateString) Value() any { return CoerceNumber(string(n)) }

// MarshalJSON implements json.Marshaler. A date-like "2024" is emitted as the
// integer 2024; use a plain string field when that is not wanted.
func (n NumberOrDateString) MarshalJSON() ([]byte, error) { return marshalCoerced(n.Value()) }

// UnmarshalJSON implements json.Unmarshaler.
func (n *NumberOrDateString) UnmarshalJSON(data []byte) error {
	s, err := unmarshalScalar("NumberOrDateString", data, false)
	if err != nil {
		return err
	}
	*n = NumberOrDateString(s)
	return nil
}

// IsEmpty reports whether the text is empty. "false" is not empty.
func (b BoolString) IsEmpty() bool { return b == "" }

// Compare orders by raw text.
func (b BoolString) Compare(other BoolString) int { return strings.Compare(string(b), string(other)) }

func (b BoolString) String() string { return string(b) }

// Value returns the coerced form that MarshalJSON emits.
func (b BoolString) Value() any { return CoerceBool(string(b)) }

// MarshalJSON implements json.Marshaler.
func (b BoolString) MarshalJSON() ([]byte, error) { return marshalCoerced(b.Value()) }

// UnmarshalJSON implements json.Unmarshaler. JSON booleans are accepted in
// addition to numbers and strings.
func (b *BoolString) UnmarshalJSON(data []byte) error {
	s, err := unmarshalScalar("BoolString", data, true)
	if err != nil {
		return err
	}
	*b = BoolString(s)
	return nil
}

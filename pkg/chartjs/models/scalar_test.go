package models

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected any
	}{
		{"123", int64(123)},
		{"-100", int64(-100)},
		{"+7", int64(7)},
		{"007", int64(7)},
		{"123.45", 123.45},
		{"5.0", 5.0},
		{"1e3", 1000.0},
		{"9223372036854775808", 9223372036854775808.0},
		{"hello", "hello"},
		{"5px", "5px"},
		{"2024-01-02", "2024-01-02"},
		{"NaN", "NaN"},
		{"inf", "inf"},
		{"0x10", "0x10"},
		{"1_000", "1_000"},
		{"", ""},
	}

	for _, tt := range tests {
		result := CoerceNumber(tt.input)
		assert.Equal(t, tt.expected, result, "CoerceNumber(%q)", tt.input)
	}
}

func TestCoerceBool(t *testing.T) {
	assert.Equal(t, true, CoerceBool("true"))
	assert.Equal(t, false, CoerceBool("false"))
	assert.Equal(t, "True", CoerceBool("True"))
	assert.Equal(t, "1", CoerceBool("1"))
	assert.Equal(t, "auto", CoerceBool("auto"))
}

func TestNumberStringMarshal(t *testing.T) {
	tests := []struct {
		input    NumberString
		expected string
	}{
		{"5", `5`},
		{"5.5", `5.5`},
		{"5.0", `5`},
		{"-0.25", `-0.25`},
		{"0", `0`},
		{"5px", `"5px"`},
		{"50%", `"50%"`},
		{"NaN", `"NaN"`},
	}

	for _, tt := range tests {
		data, err := json.Marshal(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, string(data), "marshal %q", tt.input)
	}
}

func TestNumberOrDateStringMarshal(t *testing.T) {
	data, err := json.Marshal([]NumberOrDateString{"2024", "2024-03-01", "1.5"})
	require.NoError(t, err)
	assert.Equal(t, `[2024,"2024-03-01",1.5]`, string(data))
}

func TestBoolStringMarshal(t *testing.T) {
	data, err := json.Marshal([]BoolString{"true", "false", "auto", "0"})
	require.NoError(t, err)
	assert.Equal(t, `[true,false,"auto","0"]`, string(data))
}

func TestScalarConstructors(t *testing.T) {
	assert.Equal(t, NumberString("5"), NewNumberString(5))
	assert.Equal(t, NumberString("2.5"), NewNumberString(2.5))
	assert.Equal(t, NumberString("5"), NewNumberString(5.0))
	assert.Equal(t, NumberOrDateString("2024-01-01"), NewNumberOrDateString("2024-01-01"))
	assert.Equal(t, BoolString("true"), NewBoolString(true))

	// conversions produce new values and keep the text
	n := NumberString("42")
	d := NumberOrDateString(n)
	assert.Equal(t, "42", d.String())
	assert.Equal(t, n, NumberString(d))
}

func TestScalarUnmarshal(t *testing.T) {
	tests := []struct {
		input    string
		expected NumberString
	}{
		{`5`, "5"},
		{`5.0`, "5.0"},
		{`-1.5e3`, "-1.5e3"},
		{`"5px"`, "5px"},
		{`"5"`, "5"},
		{`""`, ""},
		{`[]`, ""},
		{`[null, null]`, ""},
	}

	for _, tt := range tests {
		var n NumberString
		require.NoError(t, json.Unmarshal([]byte(tt.input), &n), "input %s", tt.input)
		assert.Equal(t, tt.expected, n, "input %s", tt.input)
	}
}

func TestScalarUnmarshalMalformed(t *testing.T) {
	inputs := []string{`{}`, `{"a":1}`, `[1]`, `["a"]`, `null`, `true`}

	for _, input := range inputs {
		var n NumberString
		err := json.Unmarshal([]byte(input), &n)
		require.Error(t, err, "input %s", input)
		assert.True(t, errors.Is(err, ErrMalformedScalar), "input %s: %v", input, err)

		var se *ScalarError
		require.True(t, errors.As(err, &se), "input %s", input)
		assert.Equal(t, "NumberString", se.Type)
	}
}

func TestBoolStringUnmarshal(t *testing.T) {
	var v struct {
		A BoolString `json:"a"`
		B BoolString `json:"b"`
		C BoolString `json:"c"`
		D BoolString `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":true,"b":false,"c":"auto","d":1}`), &v))
	assert.Equal(t, BoolString("true"), v.A)
	assert.Equal(t, BoolString("false"), v.B)
	assert.Equal(t, BoolString("auto"), v.C)
	assert.Equal(t, BoolString("1"), v.D)

	var d NumberOrDateString
	err := json.Unmarshal([]byte(`true`), &d)
	assert.ErrorIs(t, err, ErrMalformedScalar)
}

func TestScalarRoundTrip(t *testing.T) {
	numbers := []string{`1`, `-12`, `3.25`, `1e2`, `5.0`, `0`}
	for _, in := range numbers {
		var n NumberString
		require.NoError(t, json.Unmarshal([]byte(in), &n))
		out, err := json.Marshal(n)
		require.NoError(t, err)

		var want, got float64
		require.NoError(t, json.Unmarshal([]byte(in), &want))
		require.NoError(t, json.Unmarshal(out, &got))
		assert.Equal(t, want, got, "round trip %s -> %s", in, out)
	}

	strs := []string{`"5px"`, `"2024-01-02"`, `"left"`}
	for _, in := range strs {
		var n NumberOrDateString
		require.NoError(t, json.Unmarshal([]byte(in), &n))
		out, err := json.Marshal(n)
		require.NoError(t, err)
		assert.Equal(t, in, string(out))
	}
}

func TestScalarEmptiness(t *testing.T) {
	assert.True(t, NumberString("").IsEmpty())
	assert.False(t, NumberString("0").IsEmpty())
	assert.True(t, BoolString("").IsEmpty())
	assert.False(t, BoolString("false").IsEmpty())
	assert.True(t, NumberOrDateString("").IsEmpty())

	type holder struct {
		N NumberString `json:"n,omitempty"`
		B BoolString   `json:"b,omitempty"`
	}
	data, err := json.Marshal(holder{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))

	data, err = json.Marshal(holder{N: "0", B: "false"})
	require.NoError(t, err)
	assert.Equal(t, `{"n":0,"b":false}`, string(data))
}

func TestScalarOrdering(t *testing.T) {
	assert.Equal(t, -1, NumberString("10").Compare("9"))
	assert.Equal(t, 1, NumberString("9").Compare("10"))
	assert.Equal(t, 0, NumberString("5").Compare("5"))
	assert.NotEqual(t, NumberString("5"), NumberString("5.0"))
	assert.Equal(t, -1, NumberOrDateString("2024-01-10").Compare("2024-01-9"))
	assert.Equal(t, -1, BoolString("false").Compare("true"))

	values := []NumberString{"9", "10", "100", "-1", "1.5"}
	slices.SortFunc(values, NumberString.Compare)
	assert.Equal(t, []NumberString{"-1", "1.5", "10", "100", "9"}, values)
}

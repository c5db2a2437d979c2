package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind is the top-level shape of a DatasetData tree.
type Kind string

const (
	KindArray  Kind = "array"
	KindObject Kind = "object"
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindBool   Kind = "bool"
)

var emptyArray = []byte("[]")

// DatasetData is an arbitrary JSON value used for dataset point data, which
// may be flat numbers, {x,y} objects or [min,max] pairs.
//
// The value is held in canonical rendering: compact, object keys sorted,
// number literals preserved. Equality and ordering compare that rendering.
// The zero value, and a decoded JSON null, is the empty array.
type DatasetData struct {
	raw []byte
}

// NewDatasetData captures the canonical form of v immediately.
func NewDatasetData(v any) (DatasetData, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return DatasetData{}, fmt.Errorf("dataset data: %w", err)
	}
	raw, err := canonicalize(data)
	if err != nil {
		return DatasetData{}, err
	}
	return DatasetData{raw: raw}, nil
}

// DatasetDataOf converts a typed payload into DatasetData.
func DatasetDataOf[T any](v T) (DatasetData, error) {
	return NewDatasetData(v)
}

func canonicalize(data []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, fmt.Errorf("dataset data: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("dataset data: trailing data after JSON value")
	}
	// null is absence, which renders as the empty array
	if tree == nil {
		return nil, nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(tree); err != nil {
		return nil, fmt.Errorf("dataset data: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (d DatasetData) text() []byte {
	if len(d.raw) == 0 {
		return emptyArray
	}
	return d.raw
}

// Kind reports the top-level shape.
func (d DatasetData) Kind() Kind {
	switch d.text()[0] {
	case '[':
		return KindArray
	case '{':
		return KindObject
	case '"':
		return KindString
	case 't', 'f':
		return KindBool
	}
	return KindNumber
}

// IsZero reports whether the value is an empty array. Every other shape,
// including objects and scalars, is non-empty.
func (d DatasetData) IsZero() bool {
	return bytes.Equal(d.text(), emptyArray)
}

// Len returns the number of top-level elements for arrays and 0 otherwise.
func (d DatasetData) Len() int {
	if d.Kind() != KindArray {
		return 0
	}
	var items []json.RawMessage
	if err := json.Unmarshal(d.text(), &items); err != nil {
		return 0
	}
	return len(items)
}

// Compare orders by canonical rendering. The order is total but carries no
// meaning beyond determinism.
func (d DatasetData) Compare(other DatasetData) int {
	return bytes.Compare(d.text(), other.text())
}

// Equal reports whether both values have the same canonical rendering.
func (d DatasetData) Equal(other DatasetData) bool {
	return d.Compare(other) == 0
}

// Decode unmarshals the tree into v.
func (d DatasetData) Decode(v any) error {
	return json.Unmarshal(d.text(), v)
}

func (d DatasetData) String() string { return string(d.text()) }

// MarshalJSON implements json.Marshaler.
func (d DatasetData) MarshalJSON() ([]byte, error) {
	return bytes.Clone(d.text()), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DatasetData) UnmarshalJSON(data []byte) error {
	raw, err := canonicalize(data)
	if err != nil {
		return err
	}
	d.raw = raw
	return nil
}

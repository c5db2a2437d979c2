package models

import (
	"encoding/json"
	"fmt"
)

// LineAnnotation draws a line between axis values.
type LineAnnotation struct {
	Type        string             `json:"type,omitempty"`
	DrawTime    string             `json:"drawTime,omitempty"`
	XMin        NumberOrDateString `json:"xMin,omitempty"`
	XMax        NumberOrDateString `json:"xMax,omitempty"`
	YMin        NumberOrDateString `json:"yMin,omitempty"`
	YMax        NumberOrDateString `json:"yMax,omitempty"`
	BorderColor string             `json:"borderColor,omitempty"`
	BorderDash  []NumberString     `json:"borderDash,omitempty"`
	BorderWidth NumberString       `json:"borderWidth,omitempty"`
	YScaleID    NumberString       `json:"yScaleID,omitempty"`
}

// BoxAnnotation shades a rectangle. Bounds are plain strings so that
// numeric-looking category labels are kept as labels.
type BoxAnnotation struct {
	Type            string         `json:"type,omitempty"`
	DrawTime        string         `json:"drawTime,omitempty"`
	XMin            string         `json:"xMin,omitempty"`
	XMax            string         `json:"xMax,omitempty"`
	YMin            string         `json:"yMin,omitempty"`
	YMax            string         `json:"yMax,omitempty"`
	BorderColor     string         `json:"borderColor,omitempty"`
	BackgroundColor string         `json:"backgroundColor,omitempty"`
	BorderDash      []NumberString `json:"borderDash,omitempty"`
	BorderWidth     NumberString   `json:"borderWidth,omitempty"`
}

// AnyAnnotation holds either a line or a box annotation, selected by the
// "type" key when decoding.
type AnyAnnotation struct {
	Line *LineAnnotation
	Box  *BoxAnnotation
}

// MarshalJSON implements json.Marshaler.
func (a AnyAnnotation) MarshalJSON() ([]byte, error) {
	switch {
	case a.Box != nil:
		return json.Marshal(a.Box)
	case a.Line != nil:
		return json.Marshal(a.Line)
	}
	return []byte("{}"), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *AnyAnnotation) UnmarshalJSON(data []byte) error {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return fmt.Errorf("annotation: %w", err)
	}
	*a = AnyAnnotation{}
	switch head.Type {
	case "box":
		a.Box = new(BoxAnnotation)
		return json.Unmarshal(data, a.Box)
	case "line", "":
		a.Line = new(LineAnnotation)
		return json.Unmarshal(data, a.Line)
	}
	return fmt.Errorf("annotation: unsupported type %q", head.Type)
}

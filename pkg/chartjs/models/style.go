package models

// Title is a chart or axis title.
type Title struct {
	Text    string `json:"text,omitempty"`
	Display *bool  `json:"display,omitempty"`
	Font    *Font  `json:"font,omitempty"`
}

// Font configures text rendering.
type Font struct {
	Size       NumberString `json:"size,omitempty"`
	Style      NumberString `json:"style,omitempty"`
	Weight     NumberString `json:"weight,omitempty"`
	LineHeight NumberString `json:"lineHeight,omitempty"`
}

// Padding is per-side padding in pixels.
type Padding struct {
	Top    NumberString `json:"top,omitempty"`
	Bottom NumberString `json:"bottom,omitempty"`
	Left   NumberString `json:"left,omitempty"`
	Right  NumberString `json:"right,omitempty"`
}

// DataLabels configures chartjs-plugin-datalabels for a dataset.
type DataLabels struct {
	Align           string       `json:"align,omitempty"`
	Anchor          string       `json:"anchor,omitempty"`
	BackgroundColor string       `json:"backgroundColor,omitempty"`
	BorderRadius    NumberString `json:"borderRadius,omitempty"`
	DrawTime        NumberString `json:"drawTime,omitempty"`
	Color           string       `json:"color,omitempty"`
	Clip            *bool        `json:"clip,omitempty"`
	// Display is true, false or "auto".
	Display *BoolString  `json:"display,omitempty"`
	Offset  NumberString `json:"offset,omitempty"`
	Padding *Padding     `json:"padding,omitempty"`
	Font    *Font        `json:"font,omitempty"`
	Z       NumberString `json:"z,omitempty"`
}

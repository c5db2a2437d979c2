package models

// ChartElements is options.elements: defaults for every dataset element.
type ChartElements struct {
	Bar   *BarElementConfiguration   `json:"bar,omitempty"`
	Line  *LineElementConfiguration  `json:"line,omitempty"`
	Point *PointElementConfiguration `json:"point,omitempty"`
}

// BarElementConfiguration is options.elements.bar.
type BarElementConfiguration struct {
	Fill             *bool        `json:"fill,omitempty"`
	BorderRadius     NumberString `json:"borderRadius,omitempty"`
	BorderWidth      NumberString `json:"borderWidth,omitempty"`
	HoverBorderWidth NumberString `json:"hoverBorderWidth,omitempty"`
}

// LineElementConfiguration is options.elements.line.
type LineElementConfiguration struct {
	Fill                   *bool        `json:"fill,omitempty"`
	BorderWidth            NumberString `json:"borderWidth,omitempty"`
	CubicInterpolationMode string       `json:"cubicInterpolationMode,omitempty"`
}

// PointElementConfiguration is options.elements.point.
type PointElementConfiguration struct {
	Radius           NumberString `json:"radius,omitempty"`
	HitRadius        NumberString `json:"hitRadius,omitempty"`
	HoverRadius      NumberString `json:"hoverRadius,omitempty"`
	BorderWidth      NumberString `json:"borderWidth,omitempty"`
	HoverBorderWidth NumberString `json:"hoverBorderWidth,omitempty"`
}

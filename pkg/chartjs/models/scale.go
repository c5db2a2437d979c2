package models

// ChartScale is one entry of options.scales, keyed by axis id.
type ChartScale struct {
	// Type is the scale type (linear, logarithmic, category, time, ...).
	Type               string       `json:"type,omitempty"`
	AlignToPixels      *bool        `json:"alignToPixels,omitempty"`
	BackgroundColour   string       `json:"backgroundColour,omitempty"`
	BeginAtZero        *bool        `json:"beginAtZero,omitempty"`
	Border             *ScaleBorder `json:"border,omitempty"`
	Bounds             string       `json:"bounds,omitempty"`
	Display            *bool        `json:"display,omitempty"`
	Reverse            *bool        `json:"reverse,omitempty"`
	BarPercentage      NumberString `json:"barPercentage,omitempty"`
	CategoryPercentage NumberString `json:"categoryPercentage,omitempty"`
	// Grace is a number of pixels or a percentage string such as "5%".
	Grace        NumberOrDateString `json:"grace,omitempty"`
	Grid         *Grid              `json:"grid,omitempty"`
	Grouped      *bool              `json:"grouped,omitempty"`
	Offset       *bool              `json:"offset,omitempty"`
	Max          NumberOrDateString `json:"max,omitempty"`
	Min          NumberOrDateString `json:"min,omitempty"`
	Position     string             `json:"position,omitempty"`
	Stacked      *bool              `json:"stacked,omitempty"`
	SuggestedMax NumberOrDateString `json:"suggestedMax,omitempty"`
	SuggestedMin NumberOrDateString `json:"suggestedMin,omitempty"`
	Ticks        *ScaleTicks        `json:"ticks,omitempty"`
	Time         *ScaleTime         `json:"time,omitempty"`
	Title        *Title             `json:"title,omitempty"`
	Weight       NumberString       `json:"weight,omitempty"`
}

// ScaleBorder configures the axis border line.
type ScaleBorder struct {
	Display    *bool        `json:"display,omitempty"`
	Color      string       `json:"color,omitempty"`
	Width      NumberString `json:"width,omitempty"`
	Dash       NumberString `json:"dash,omitempty"`
	DashOffset NumberString `json:"dashOffset,omitempty"`
	Z          NumberString `json:"z,omitempty"`
}

// Grid configures grid lines.
type Grid struct {
	Display         *bool `json:"display,omitempty"`
	DrawOnChartArea *bool `json:"drawOnChartArea,omitempty"`
}

// ScaleTicks configures tick generation.
type ScaleTicks struct {
	Align         string       `json:"align,omitempty"`
	MaxTicksLimit NumberString `json:"maxTicksLimit,omitempty"`
	StepSize      NumberString `json:"stepSize,omitempty"`
	Count         NumberString `json:"count,omitempty"`
	Precision     NumberString `json:"precision,omitempty"`
}

// ScaleTime configures a time scale.
type ScaleTime struct {
	DisplayFormats *DisplayFormats `json:"displayFormats,omitempty"`
	Unit           string          `json:"unit,omitempty"`
}

// DisplayFormats maps time units to moment/luxon format strings.
type DisplayFormats struct {
	Year    string `json:"year,omitempty"`
	Quarter string `json:"quarter,omitempty"`
	Month   string `json:"month,omitempty"`
	Week    string `json:"week,omitempty"`
	Day     string `json:"day,omitempty"`
	Hour    string `json:"hour,omitempty"`
	Minute  string `json:"minute,omitempty"`
}

// Package parser reads chart definitions and cell ranges from xlsx files.
package parser

// SeriesSpec represents series metadata read from a chart part.
type SeriesSpec struct {
	// Name is the cached series display name.
	Name string
	// NameRange is the range reference for the series name.
	NameRange string
	// XRange is the range reference for categories or scatter X values.
	XRange string
	// YRange is the range reference for values or scatter Y values.
	YRange string
}

// ChartSpec represents an Excel chart: its kind, titles, value axis bounds and
// the ranges its series are drawn from.
type ChartSpec struct {
	// Name is the drawing object name (e.g. "Chart 1").
	Name string
	// Kind is the chart kind from ChartTypeMap (e.g. Line, Bar, XYScatter).
	Kind string
	// Horizontal is set for bar charts drawn with barDir="bar".
	Horizontal bool
	// Title is the chart title.
	Title string
	// YAxisTitle is the value axis title.
	YAxisTitle string
	// YAxisRange is the value axis [min, max] when both are fixed.
	YAxisRange []float64
	// HasLegend reports whether the chart shows a legend.
	HasLegend bool
	// LegendPosition is the OOXML legend position (b, t, l, r, tr).
	LegendPosition string
	// W is the chart width in pixels.
	W int
	// H is the chart height in pixels.
	H int
	// Series is the list of series included in the chart.
	Series []SeriesSpec
}

package models

// Dataset is the `data` section of a chart: a payload of dataset records and
// the category labels. D is any JSON-serializable dataset shape, usually
// []XYDataset or []SinglePointDataset.
type Dataset[D any] struct {
	// Datasets is the dataset payload. A nil payload is omitted.
	Datasets D `json:"datasets,omitzero"`
	// Labels are the category axis labels.
	Labels []NumberOrDateString `json:"labels,omitempty"`
}

// NoDatasets is an empty dataset payload. It encodes as {}.
type NoDatasets struct{}

// IsZero reports false so that the payload is always emitted.
func (NoDatasets) IsZero() bool { return false }

// NoAnnotations is an empty annotation payload.
type NoAnnotations struct{}

// Chart is the configuration object passed to the Chart.js constructor.
type Chart[D, A any] struct {
	// Type is the chart type (line, bar, scatter, pie, ...).
	Type string `json:"type,omitempty"`
	// Data holds datasets and labels.
	Data Dataset[D] `json:"data"`
	// Options holds the optional configuration tree.
	Options *ChartOptions[A] `json:"options,omitempty"`
}

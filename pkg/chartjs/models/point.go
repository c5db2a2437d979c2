package models

// XYPoint is a single {x, y} data point.
type XYPoint struct {
	X           NumberOrDateString `json:"x,omitempty"`
	Y           NumberString       `json:"y,omitempty"`
	Description string             `json:"description,omitempty"`
}

// NewXYPoint builds a point from the textual forms of x and y.
func NewXYPoint(x, y any) XYPoint {
	return XYPoint{
		X: NewNumberOrDateString(x),
		Y: NewNumberString(y),
	}
}

// NaNPoint returns a point Chart.js cannot plot, used to break a line series.
func NaNPoint() XYPoint {
	return XYPoint{
		X: "NaN",
		Y: "NaN",
	}
}

// Compare orders points by x, then y, then description, each by raw text.
func (p XYPoint) Compare(other XYPoint) int {
	if c := p.X.Compare(other.X); c != 0 {
		return c
	}
	if c := p.Y.Compare(other.Y); c != 0 {
		return c
	}
	switch {
	case p.Description < other.Description:
		return -1
	case p.Description > other.Description:
		return 1
	}
	return 0
}

// MinMaxPoint is a floating bar range [min, max].
type MinMaxPoint [2]NumberOrDateString

// NewMinMaxPoint builds a range from the textual forms of lo and hi.
func NewMinMaxPoint(lo, hi any) MinMaxPoint {
	return MinMaxPoint{NewNumberOrDateString(lo), NewNumberOrDateString(hi)}
}

// Min returns the lower bound.
func (p MinMaxPoint) Min() NumberOrDateString { return p[0] }

// Max returns the upper bound.
func (p MinMaxPoint) Max() NumberOrDateString { return p[1] }

// XYPoints is a series of points convertible to DatasetData.
type XYPoints []XYPoint

// DatasetData copies the points into a DatasetData value.
func (ps XYPoints) DatasetData() (DatasetData, error) { return NewDatasetData(ps) }

// MinMaxPoints is a series of ranges convertible to DatasetData.
type MinMaxPoints []MinMaxPoint

// DatasetData copies the ranges into a DatasetData value.
func (ps MinMaxPoints) DatasetData() (DatasetData, error) { return NewDatasetData(ps) }

// NumberStrings is a flat series of values convertible to DatasetData.
type NumberStrings []NumberString

// DatasetData copies the values into a DatasetData value.
func (ns NumberStrings) DatasetData() (DatasetData, error) { return NewDatasetData(ns) }

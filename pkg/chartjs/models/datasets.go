package models

// SinglePointDataset is a dataset whose data is a flat list of values, one
// per label. Per-point colors are given as a list.
type SinglePointDataset struct {
	BackgroundColor           []string           `json:"backgroundColor,omitempty"`
	Base                      NumberString       `json:"base,omitempty"`
	BarThickness              NumberString       `json:"barThickness,omitempty"`
	BarPercentage             NumberString       `json:"barPercentage,omitempty"`
	BorderColor               string             `json:"borderColor,omitempty"`
	BorderSkipped             string             `json:"borderSkipped,omitempty"`
	BorderWidth               NumberString       `json:"borderWidth,omitempty"`
	BorderRadius              NumberString       `json:"borderRadius,omitempty"`
	BorderJoinStyle           string             `json:"borderJoinStyle,omitempty"`
	CategoryPercentage        NumberString       `json:"categoryPercentage,omitempty"`
	Clip                      NumberString       `json:"clip,omitempty"`
	Data                      []NumberString     `json:"data,omitempty"`
	Grouped                   *bool              `json:"grouped,omitempty"`
	HoverBackgroundColor      string             `json:"hoverBackgroundColor,omitempty"`
	HoverBorderColor          string             `json:"hoverBorderColor,omitempty"`
	HoverBorderWidth          NumberString       `json:"hoverBorderWidth,omitempty"`
	HoverBorderRadius         NumberString       `json:"hoverBorderRadius,omitempty"`
	IndexAxis                 string             `json:"indexAxis,omitempty"`
	InflateAmount             NumberString       `json:"inflateAmount,omitempty"`
	Label                     string             `json:"label,omitempty"`
	MaxBarThickness           NumberString       `json:"maxBarThickness,omitempty"`
	MinBarLength              NumberString       `json:"minBarLength,omitempty"`
	Order                     NumberString       `json:"order,omitempty"`
	PointBackgroundColor      string             `json:"pointBackgroundColor,omitempty"`
	PointBorderColor          string             `json:"pointBorderColor,omitempty"`
	PointBorderWidth          NumberString       `json:"pointBorderWidth,omitempty"`
	PointHoverBackgroundColor string             `json:"pointHoverBackgroundColor,omitempty"`
	PointHoverBorderWidth     NumberString       `json:"pointHoverBorderWidth,omitempty"`
	PointHoverRadius          NumberOrDateString `json:"pointHoverRadius,omitempty"`
	PointRadius               NumberString       `json:"pointRadius,omitempty"`
	PointStyle                string             `json:"pointStyle,omitempty"`
	DataLabels                *DataLabels        `json:"datalabels,omitempty"`
	Type                      string             `json:"type,omitempty"`
	Stepped                   *bool              `json:"stepped,omitempty"`
	SkipNull                  *bool              `json:"skipNull,omitempty"`
	Stack                     string             `json:"stack,omitempty"`
	XAxisID                   string             `json:"xAxisID,omitempty"`
	YAxisID                   string             `json:"yAxisID,omitempty"`
}

// XYDataset is a dataset whose data is a DatasetData value: flat numbers,
// {x,y} points or [min,max] ranges.
type XYDataset struct {
	BackgroundColor           string             `json:"backgroundColor,omitempty"`
	BarThickness              NumberString       `json:"barThickness,omitempty"`
	BorderColor               string             `json:"borderColor,omitempty"`
	BorderDash                []NumberString     `json:"borderDash,omitempty"`
	BorderJoinStyle           string             `json:"borderJoinStyle,omitempty"`
	BorderWidth               NumberString       `json:"borderWidth,omitempty"`
	Data                      DatasetData        `json:"data,omitzero"`
	DataLabels                *DataLabels        `json:"datalabels,omitempty"`
	Description               string             `json:"description,omitempty"`
	CategoryLabel             string             `json:"category_label,omitempty"`
	HoverBackgroundColor      string             `json:"hoverBackgroundColor,omitempty"`
	Label                     string             `json:"label,omitempty"`
	Order                     NumberString       `json:"order,omitempty"`
	PointBackgroundColor      string             `json:"pointBackgroundColor,omitempty"`
	PointBorderColor          string             `json:"pointBorderColor,omitempty"`
	PointBorderWidth          NumberString       `json:"pointBorderWidth,omitempty"`
	PointHoverBackgroundColor string             `json:"pointHoverBackgroundColor,omitempty"`
	PointHoverBorderWidth     NumberString       `json:"pointHoverBorderWidth,omitempty"`
	PointHoverRadius          NumberOrDateString `json:"pointHoverRadius,omitempty"`
	PointRadius               NumberString       `json:"pointRadius,omitempty"`
	PointHitRadius            NumberString       `json:"pointHitRadius,omitempty"`
	HitRadius                 NumberString       `json:"hitRadius,omitempty"`
	PointStyle                string             `json:"pointStyle,omitempty"`
	Type                      string             `json:"type,omitempty"`
	Stepped                   *BoolString        `json:"stepped,omitempty"`
	Tension                   NumberString       `json:"tension,omitempty"`
	XAxisID                   string             `json:"xAxisID,omitempty"`
	YAxisID                   string             `json:"yAxisID,omitempty"`
	Fill                      string             `json:"fill,omitempty"`
	Base                      NumberString       `json:"base,omitempty"`
	BarPercentage             NumberString       `json:"barPercentage,omitempty"`
	BorderSkipped             string             `json:"borderSkipped,omitempty"`
	BorderRadius              NumberString       `json:"borderRadius,omitempty"`
	CategoryPercentage        NumberString       `json:"categoryPercentage,omitempty"`
	Clip                      NumberString       `json:"clip,omitempty"`
	Grouped                   *bool              `json:"grouped,omitempty"`
	HoverBorderColor          string             `json:"hoverBorderColor,omitempty"`
	HoverBorderWidth          NumberString       `json:"hoverBorderWidth,omitempty"`
	HoverBorderRadius         NumberString       `json:"hoverBorderRadius,omitempty"`
	IndexAxis                 string             `json:"indexAxis,omitempty"`
	InflateAmount             NumberString       `json:"inflateAmount,omitempty"`
	MaxBarThickness           NumberString       `json:"maxBarThickness,omitempty"`
	MinBarLength              NumberString       `json:"minBarLength,omitempty"`
	SkipNull                  *bool              `json:"skipNull,omitempty"`
	Stack                     string             `json:"stack,omitempty"`
	Z                         NumberString       `json:"z,omitempty"`
	Segment                   *Segment           `json:"segment,omitempty"`
	SpanGaps                  *bool              `json:"spanGaps,omitempty"`
}

// Segment styles line segments through scriptable functions.
type Segment struct {
	BorderDash  FnWithArgs `json:"borderDash,omitzero"`
	BorderColor FnWithArgs `json:"borderColor,omitzero"`
}

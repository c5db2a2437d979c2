package models

// ChartOptions is the `options` section of a chart. A is the annotation
// payload type hosted under plugins.annotation.annotations.
type ChartOptions[A any] struct {
	Plugins             *ChartPlugins[A]      `json:"plugins,omitempty"`
	Scales              map[string]ChartScale `json:"scales,omitempty"`
	Interaction         *ChartInteraction     `json:"interaction,omitempty"`
	Tooltips            *ChartTooltips        `json:"tooltips,omitempty"`
	MaintainAspectRatio *bool                 `json:"maintainAspectRatio,omitempty"`
	AspectRatio         NumberString          `json:"aspectRatio,omitempty"`
	IndexAxis           string                `json:"indexAxis,omitempty"`
	Legend              *ChartLegend          `json:"legend,omitempty"`
	Animation           *Animation            `json:"animation,omitempty"`
	SpanGaps            *bool                 `json:"spanGaps,omitempty"`
	Elements            *ChartElements        `json:"elements,omitempty"`
	Responsive          *bool                 `json:"responsive,omitempty"`
}

// SetScale stores s under id.
func (o *ChartOptions[A]) SetScale(id string, s ChartScale) {
	if o.Scales == nil {
		o.Scales = make(map[string]ChartScale)
	}
	o.Scales[id] = s
}

// Animation configures chart animations.
type Animation struct {
	Duration NumberString `json:"duration,omitempty"`
}

// ChartInteraction configures how hover and tooltip items are picked.
type ChartInteraction struct {
	Intersect *bool  `json:"intersect,omitempty"`
	Mode      string `json:"mode,omitempty"`
	Axis      string `json:"axis,omitempty"`
}

// ChartTooltips is the Chart.js 2 tooltip section.
type ChartTooltips struct {
	Position string `json:"position,omitempty"`
}

// ChartLegend is the Chart.js 2 legend section.
type ChartLegend struct {
	Display  *bool        `json:"display,omitempty"`
	Position string       `json:"position,omitempty"`
	Labels   *LegendLabel `json:"labels,omitempty"`
}

// LegendLabel configures legend items.
type LegendLabel struct {
	UsePointStyle   *bool        `json:"usePointStyle,omitempty"`
	UseBorderRadius *bool        `json:"useBorderRadius,omitempty"`
	BoxHeight       *int         `json:"boxHeight,omitempty"`
	BoxWidth        *int         `json:"boxWidth,omitempty"`
	PointStyle      string       `json:"pointStyle,omitempty"`
	PointStyleWidth NumberString `json:"pointStyleWidth,omitempty"`
}

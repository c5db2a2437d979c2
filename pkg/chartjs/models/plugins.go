package models

// ChartPlugins is options.plugins.
type ChartPlugins[A any] struct {
	Autocolors *bool           `json:"autocolors,omitempty"`
	Tooltip    *TooltipPlugins `json:"tooltip,omitempty"`
	Annotation *Annotations[A] `json:"annotation,omitempty"`
	Title      *Title          `json:"title,omitempty"`
	Legend     *PluginLegend   `json:"legend,omitempty"`
}

// Annotations is options.plugins.annotation, keyed by annotation id.
type Annotations[A any] struct {
	Annotations map[string]A `json:"annotations,omitempty"`
}

// Add stores a under id, allocating the map on first use.
func (a *Annotations[A]) Add(id string, annotation A) {
	if a.Annotations == nil {
		a.Annotations = make(map[string]A)
	}
	a.Annotations[id] = annotation
}

// PluginLegend is options.plugins.legend.
type PluginLegend struct {
	Display  *bool        `json:"display,omitempty"`
	Position string       `json:"position,omitempty"`
	Labels   *LegendLabel `json:"labels,omitempty"`
	Reverse  *bool        `json:"reverse,omitempty"`
}

// TooltipPlugins is options.plugins.tooltip.
type TooltipPlugins struct {
	Enabled           *bool        `json:"enabled,omitempty"`
	BodyColor         string       `json:"bodyColor,omitempty"`
	BodyAlign         string       `json:"bodyAlign,omitempty"`
	DisplayColors     *bool        `json:"displayColors,omitempty"`
	BackgroundColor   string       `json:"backgroundColor,omitempty"`
	TitleColor        string       `json:"titleColor,omitempty"`
	TitleAlign        string       `json:"titleAlign,omitempty"`
	TitleMarginBottom NumberString `json:"titleMarginBottom,omitempty"`
}

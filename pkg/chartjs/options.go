// Package chartjs converts Excel charts into typed Chart.js configurations.
package chartjs

import (
	"io"
	"log/slog"
)

// Mode represents the conversion mode.
type Mode string

const (
	// ModeLight emits chart type and data only.
	ModeLight Mode = "light"
	// ModeStandard adds the chart title, value axis title and bounds, and legend.
	ModeStandard Mode = "standard"
	// ModeVerbose also carries the chart's aspect ratio from its size on the sheet.
	ModeVerbose Mode = "verbose"
)

// ParseMode returns the Mode named by s.
func ParseMode(s string) (Mode, bool) {
	switch m := Mode(s); m {
	case ModeLight, ModeStandard, ModeVerbose:
		return m, true
	}
	return "", false
}

// Options configures conversion behavior.
type Options struct {
	// Mode specifies the conversion mode (light, standard, verbose).
	Mode Mode
	// IncludeTables specifies whether sheets without charts get a line chart
	// per detected table. If nil, defaults to true for verbose mode, false
	// otherwise.
	IncludeTables *bool
	// Logger receives warnings for skipped charts. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeStandard,
	}
}

// ShouldIncludeTables returns whether to chart detected tables.
func (o Options) ShouldIncludeTables() bool {
	if o.IncludeTables != nil {
		return *o.IncludeTables
	}
	return o.Mode == ModeVerbose
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

package chartjs

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/ukaji3/chartjs-go/pkg/chartjs/models"
	"github.com/ukaji3/chartjs-go/pkg/chartjs/parser"
	"github.com/xuri/excelize/v2"
)

// Config is a Chart.js configuration built from a workbook chart.
type Config = models.Chart[[]models.XYDataset, models.NoAnnotations]

// Workbook holds the Chart.js configurations of a workbook, keyed by sheet.
type Workbook struct {
	BookName string              `json:"book_name"`
	Sheets   map[string][]Config `json:"sheets"`
}

// Convert reads the charts of an Excel file and returns their Chart.js
// configurations. Charts that cannot be converted are logged and skipped.
func Convert(path string, opts Options) (*Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	specs, err := parser.ExtractCharts(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	log := opts.logger()
	wb := &Workbook{
		BookName: filepath.Base(path),
		Sheets:   make(map[string][]Config),
	}

	for _, sheetName := range f.GetSheetList() {
		var configs []Config
		for _, spec := range specs[sheetName] {
			cfg, err := buildConfig(f, spec, opts.Mode)
			if err != nil {
				log.Warn("skipping chart", "error", NewConversionError(sheetName, spec.Name, err))
				continue
			}
			configs = append(configs, cfg)
		}

		if len(specs[sheetName]) == 0 && opts.ShouldIncludeTables() {
			configs = tableConfigs(f, sheetName, log)
		}

		if len(configs) > 0 {
			wb.Sheets[sheetName] = configs
			log.Debug("converted sheet", "sheet", sheetName, "charts", len(configs))
		}
	}

	return wb, nil
}

// ChartType returns the Chart.js type for an Excel chart kind.
func ChartType(kind string) string {
	switch kind {
	case "Line", "3DLine", "Area", "3DArea":
		return "line"
	case "Bar", "3DBar":
		return "bar"
	case "Pie", "3DPie", "PieOfPie":
		return "pie"
	case "Doughnut":
		return "doughnut"
	case "Radar":
		return "radar"
	case "XYScatter":
		return "scatter"
	case "Bubble":
		return "bubble"
	default:
		return "line"
	}
}

// buildConfig converts one chart spec, reading its series from f.
func buildConfig(f *excelize.File, spec parser.ChartSpec, mode Mode) (Config, error) {
	cfg := Config{Type: ChartType(spec.Kind)}
	pointData := cfg.Type == "scatter" || cfg.Type == "bubble"

	for _, s := range spec.Series {
		if s.YRange == "" {
			continue
		}
		ds, err := buildDataset(f, s, pointData)
		if err != nil {
			return Config{}, err
		}
		if spec.Kind == "Area" || spec.Kind == "3DArea" {
			ds.Fill = "origin"
		}
		cfg.Data.Datasets = append(cfg.Data.Datasets, ds)

		if !pointData && cfg.Data.Labels == nil && s.XRange != "" {
			labels, err := parser.ReadRangeText(f, s.XRange)
			if err != nil {
				return Config{}, err
			}
			for _, l := range labels {
				cfg.Data.Labels = append(cfg.Data.Labels, models.NumberOrDateString(l))
			}
		}
	}
	if len(cfg.Data.Datasets) == 0 {
		return Config{}, ErrNoSeries
	}

	opts := &models.ChartOptions[models.NoAnnotations]{}
	valueAxis := "y"
	if spec.Horizontal {
		opts.IndexAxis = "y"
		valueAxis = "x"
	}
	if mode != ModeLight {
		applyStandard(opts, spec, valueAxis)
	}
	if mode == ModeVerbose && spec.W > 0 && spec.H > 0 {
		ratio := math.Round(float64(spec.W)/float64(spec.H)*100) / 100
		opts.AspectRatio = models.NewNumberString(ratio)
		opts.MaintainAspectRatio = boolPtr(true)
	}
	if opts.Plugins != nil || opts.Scales != nil || opts.IndexAxis != "" || opts.MaintainAspectRatio != nil {
		cfg.Options = opts
	}

	return cfg, nil
}

// buildDataset reads a series into a dataset: flat values, or {x,y} points
// when pointData is set.
func buildDataset(f *excelize.File, s parser.SeriesSpec, pointData bool) (models.XYDataset, error) {
	ds := models.XYDataset{Label: s.Name}
	if ds.Label == "" && s.NameRange != "" {
		if names, err := parser.ReadRangeText(f, s.NameRange); err == nil && len(names) > 0 {
			ds.Label = names[0]
		}
	}

	ys, err := parser.ReadRange(f, s.YRange)
	if err != nil {
		return ds, err
	}

	if !pointData {
		ds.Data, err = models.NumberStrings(ys).DatasetData()
		return ds, err
	}

	var xs []models.NumberString
	if s.XRange != "" {
		if xs, err = parser.ReadRange(f, s.XRange); err != nil {
			return ds, err
		}
	}

	points := make(models.XYPoints, len(ys))
	for i, y := range ys {
		x := models.NewNumberOrDateString(i + 1)
		if i < len(xs) {
			x = models.NumberOrDateString(xs[i])
		}
		points[i] = models.XYPoint{X: x, Y: y}
	}
	ds.Data, err = points.DatasetData()
	return ds, err
}

// applyStandard sets title, value axis and legend options.
func applyStandard(opts *models.ChartOptions[models.NoAnnotations], spec parser.ChartSpec, valueAxis string) {
	plugins := &models.ChartPlugins[models.NoAnnotations]{}
	if spec.Title != "" {
		plugins.Title = &models.Title{Text: spec.Title, Display: boolPtr(true)}
	}
	if spec.HasLegend {
		plugins.Legend = &models.PluginLegend{
			Display:  boolPtr(true),
			Position: legendPosition(spec.LegendPosition),
		}
	} else {
		plugins.Legend = &models.PluginLegend{Display: boolPtr(false)}
	}
	opts.Plugins = plugins

	switch ChartType(spec.Kind) {
	case "pie", "doughnut", "radar":
		return
	}

	var scale models.ChartScale
	if spec.YAxisTitle != "" {
		scale.Title = &models.Title{Text: spec.YAxisTitle, Display: boolPtr(true)}
	}
	if len(spec.YAxisRange) == 2 {
		scale.Min = models.NewNumberOrDateString(spec.YAxisRange[0])
		scale.Max = models.NewNumberOrDateString(spec.YAxisRange[1])
	}
	if scale.Title != nil || !scale.Min.IsEmpty() {
		opts.SetScale(valueAxis, scale)
	}
}

// legendPosition maps an OOXML legendPos value to a Chart.js position.
func legendPosition(pos string) string {
	switch pos {
	case "b":
		return "bottom"
	case "t":
		return "top"
	case "l":
		return "left"
	case "r", "tr":
		return "right"
	default:
		return ""
	}
}

// tableConfigs builds a line chart per table detected on a sheet. The header
// row labels the datasets and the first column labels the points.
func tableConfigs(f *excelize.File, sheetName string, log *slog.Logger) []Config {
	tables, err := parser.DetectTables(f, sheetName, parser.DefaultTableParams())
	if err != nil {
		log.Warn("table detection failed", "sheet", sheetName, "error", err)
		return nil
	}

	var configs []Config
	for _, ref := range tables {
		rows, err := parser.TableValues(f, sheetName, ref)
		if err != nil {
			log.Warn("skipping table", "error", NewConversionError(sheetName, ref, err))
			continue
		}
		if cfg, ok := tableConfig(rows); ok {
			configs = append(configs, cfg)
		}
	}
	return configs
}

func tableConfig(rows [][]models.NumberString) (Config, bool) {
	if len(rows) < 2 || len(rows[0]) < 2 {
		return Config{}, false
	}

	cfg := Config{Type: "line"}
	for _, row := range rows[1:] {
		cfg.Data.Labels = append(cfg.Data.Labels, models.NumberOrDateString(row[0]))
	}

	for col := 1; col < len(rows[0]); col++ {
		values := make(models.NumberStrings, 0, len(rows)-1)
		for _, row := range rows[1:] {
			v := models.NumberString("NaN")
			if col < len(row) && !row[col].IsEmpty() {
				v = row[col]
			}
			values = append(values, v)
		}
		data, err := values.DatasetData()
		if err != nil {
			return Config{}, false
		}
		cfg.Data.Datasets = append(cfg.Data.Datasets, models.XYDataset{
			Label: string(rows[0][col]),
			Data:  data,
		})
	}

	return cfg, true
}

func boolPtr(b bool) *bool {
	return &b
}

package parser

import (
	"archive/zip"
	"encoding/xml"
	"strconv"
	"strings"
)

// ChartTypeMap maps OOXML chart element tags to chart kind names.
var ChartTypeMap = map[string]string{
	"lineChart":      "Line",
	"line3DChart":    "3DLine",
	"barChart":       "Bar",
	"bar3DChart":     "3DBar",
	"areaChart":      "Area",
	"area3DChart":    "3DArea",
	"pieChart":       "Pie",
	"pie3DChart":     "3DPie",
	"doughnutChart":  "Doughnut",
	"scatterChart":   "XYScatter",
	"bubbleChart":    "Bubble",
	"radarChart":     "Radar",
	"surfaceChart":   "Surface",
	"surface3DChart": "3DSurface",
	"stockChart":     "Stock",
	"ofPieChart":     "PieOfPie",
}

// chartInfo holds chart metadata from drawing.xml.
type chartInfo struct {
	chartPosition
	chartPath string
}

// chartPosition holds position info from drawing.xml.
type chartPosition struct {
	name   string
	left   int
	top    int
	width  int
	height int
}

// ExtractCharts extracts chart specs from an xlsx file, keyed by sheet name.
// Charts whose part cannot be read are skipped.
func ExtractCharts(xlsxPath string) (map[string][]ChartSpec, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return extractCharts(&r.Reader)
}

func extractCharts(r *zip.Reader) (map[string][]ChartSpec, error) {
	sheetChartMap, err := getSheetChartMap(r)
	if err != nil {
		return nil, err
	}

	result := make(map[string][]ChartSpec)
	for sheetName, chartInfos := range sheetChartMap {
		var charts []ChartSpec
		for _, ci := range chartInfos {
			chartXML, err := readZipFile(r, ci.chartPath)
			if err != nil || chartXML == nil {
				continue
			}
			charts = append(charts, parseChartXML(chartXML, ci.chartPosition))
		}
		result[sheetName] = charts
	}

	return result, nil
}

// getSheetChartMap returns a mapping of sheet names to their chart info.
func getSheetChartMap(r *zip.Reader) (map[string][]chartInfo, error) {
	result := make(map[string][]chartInfo)

	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil {
		return nil, err
	}
	if workbookXML == nil {
		return result, nil
	}

	sheetsInfo := parseWorkbookSheets(workbookXML)
	if len(sheetsInfo) == 0 {
		return result, nil
	}

	wbRelsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil || wbRelsXML == nil {
		return result, err
	}

	sheetFiles := parseWorkbookRels(wbRelsXML, sheetsInfo)

	for sheetName, sheetPath := range sheetFiles {
		sheetRelsXML, err := readZipFile(r, relsPathFor(sheetPath))
		if err != nil || sheetRelsXML == nil {
			continue
		}

		drawingPath := findDrawingRelationship(sheetRelsXML)
		if drawingPath == "" {
			continue
		}

		drawingFullPath := resolveRelativePath(drawingPath, "xl/drawings")
		if chartInfos := getChartInfosFromDrawing(r, drawingFullPath); len(chartInfos) > 0 {
			result[sheetName] = chartInfos
		}
	}

	return result, nil
}

// getChartInfosFromDrawing extracts chart info from a drawing XML file, in
// drawing order.
func getChartInfosFromDrawing(r *zip.Reader, drawingPath string) []chartInfo {
	var result []chartInfo

	drawingXML, err := readZipFile(r, drawingPath)
	if err != nil || drawingXML == nil {
		return result
	}

	anchors := parseDrawingForCharts(drawingXML)
	if len(anchors) == 0 {
		return result
	}

	relsXML, err := readZipFile(r, relsPathFor(drawingPath))
	if err != nil || relsXML == nil {
		return result
	}
	chartPaths := parseRels(relsXML, "chart")

	for _, a := range anchors {
		if chartPath, ok := chartPaths[a.rID]; ok {
			result = append(result, chartInfo{
				chartPosition: a.pos,
				chartPath:     resolveRelativePath(chartPath, "xl/charts"),
			})
		}
	}

	return result
}

type chartAnchor struct {
	rID string
	pos chartPosition
}

// parseDrawingForCharts parses drawing XML to find chart anchors.
func parseDrawingForCharts(data []byte) []chartAnchor {
	var result []chartAnchor
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		if se, ok := token.(xml.StartElement); ok {
			switch se.Name.Local {
			case "twoCellAnchor", "oneCellAnchor", "absoluteAnchor":
				if rID, pos := parseAnchor(decoder); rID != "" {
					result = append(result, chartAnchor{rID: rID, pos: pos})
				}
			}
		}
	}

	return result
}

// parseAnchor parses an anchor holding a graphicFrame with a chart.
func parseAnchor(decoder *xml.Decoder) (string, chartPosition) {
	var rID, section string
	var pos chartPosition
	cells := map[string]int{}
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "from", "to":
				section = t.Name.Local
			case "col", "row":
				if txt, err := readElementText(decoder); err == nil {
					if n, err := strconv.Atoi(strings.TrimSpace(txt)); err == nil {
						cells[section+"."+t.Name.Local] = n
					}
				}
				depth--
			case "ext":
				if attrValue(t, "cx") != "" {
					pos.width, pos.height = emuAttr(t, "cx"), emuAttr(t, "cy")
				}
			case "cNvPr":
				pos.name = attrValue(t, "name")
			case "xfrm":
				l, tp, w, h := parseXfrm(decoder)
				pos.left, pos.top = l, tp
				if w > 0 && h > 0 {
					pos.width, pos.height = w, h
				}
				depth--
			case "chart":
				rID = attrValue(t, "id")
			}
		case xml.EndElement:
			depth--
			if t.Name.Local == section {
				section = ""
			}
		}
	}

	if pos.width == 0 || pos.height == 0 {
		cols, rows := cells["to.col"]-cells["from.col"], cells["to.row"]-cells["from.row"]
		if cols > 0 && rows > 0 {
			pos.width, pos.height = anchorPixels(cols, rows)
		}
	}

	return rID, pos
}

// parseChartXML parses chart XML content.
func parseChartXML(data []byte, pos chartPosition) ChartSpec {
	spec := ChartSpec{
		Name: pos.name,
		W:    pos.width,
		H:    pos.height,
	}
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "chart" {
			parseChartElement(decoder, &spec)
		}
	}

	if spec.Kind == "" {
		spec.Kind = "unknown"
	}
	return spec
}

// parseChartElement parses the c:chart element.
func parseChartElement(decoder *xml.Decoder, spec *ChartSpec) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "title":
				spec.Title = parseChartTitle(decoder)
				depth--
			case "plotArea":
				parsePlotArea(decoder, spec)
				depth--
			case "legend":
				spec.HasLegend = true
				spec.LegendPosition = parseLegend(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseChartTitle parses a title element, joining rich text runs and cached
// string values.
func parseChartTitle(decoder *xml.Decoder) string {
	var parts []string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "t" || t.Name.Local == "v" {
				if txt, err := readElementText(decoder); err == nil {
					parts = append(parts, txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return strings.TrimSpace(strings.Join(parts, ""))
}

// parseLegend returns the legendPos value of a legend element.
func parseLegend(decoder *xml.Decoder) string {
	var position string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "legendPos" {
				position = attrValue(t, "val")
			}
		case xml.EndElement:
			depth--
		}
	}

	return position
}

// parsePlotArea parses the plot area element. The first chart type element
// names the kind; series of combo charts are appended in order.
func parsePlotArea(decoder *xml.Decoder, spec *ChartSpec) {
	haveAxis := false
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if kind, ok := ChartTypeMap[t.Name.Local]; ok {
				if spec.Kind == "" {
					spec.Kind = kind
				}
				series, horizontal := parseChartSeries(decoder)
				spec.Series = append(spec.Series, series...)
				spec.Horizontal = spec.Horizontal || horizontal
				depth--
			} else if t.Name.Local == "valAx" {
				title, axisRange, axPos := parseValueAxis(decoder)
				vertical := axPos == "l" || axPos == "r"
				if !haveAxis || vertical {
					spec.YAxisTitle, spec.YAxisRange = title, axisRange
					haveAxis = true
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseChartSeries parses series elements within a chart type, and whether
// bars run horizontally.
func parseChartSeries(decoder *xml.Decoder) ([]SeriesSpec, bool) {
	var series []SeriesSpec
	horizontal := false
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "ser":
				series = append(series, parseSingleSeries(decoder))
				depth--
			case "barDir":
				horizontal = attrValue(t, "val") == "bar"
			}
		case xml.EndElement:
			depth--
		}
	}

	return series, horizontal
}

// parseSingleSeries parses a single series element.
func parseSingleSeries(decoder *xml.Decoder) SeriesSpec {
	var s SeriesSpec
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "tx":
				s.Name, s.NameRange = parseSeriesName(decoder)
				depth--
			case "cat", "xVal":
				s.XRange = parseSeriesRange(decoder)
				depth--
			case "val", "yVal":
				s.YRange = parseSeriesRange(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return s
}

// parseSeriesName parses series name from tx element.
func parseSeriesName(decoder *xml.Decoder) (name, nameRange string) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "f":
				if txt, err := readElementText(decoder); err == nil {
					nameRange = strings.TrimSpace(txt)
				}
				depth--
			case "v":
				if txt, err := readElementText(decoder); err == nil {
					name = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseSeriesRange parses the range reference of a cat, val, xVal or yVal
// element.
func parseSeriesRange(decoder *xml.Decoder) string {
	var ref string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "f" && ref == "" {
				if txt, err := readElementText(decoder); err == nil {
					ref = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return ref
}

// parseValueAxis parses a value axis element.
func parseValueAxis(decoder *xml.Decoder) (title string, axisRange []float64, axPos string) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "title":
				title = parseChartTitle(decoder)
				depth--
			case "scaling":
				axisRange = parseAxisScaling(decoder)
				depth--
			case "axPos":
				axPos = attrValue(t, "val")
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseAxisScaling parses an axis scaling element.
func parseAxisScaling(decoder *xml.Decoder) []float64 {
	var lo, hi *float64
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "min":
				if v, err := strconv.ParseFloat(attrValue(t, "val"), 64); err == nil {
					lo = &v
				}
			case "max":
				if v, err := strconv.ParseFloat(attrValue(t, "val"), 64); err == nil {
					hi = &v
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	if lo != nil && hi != nil {
		return []float64{*lo, *hi}
	}
	return nil
}

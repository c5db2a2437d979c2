package parser

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeChartWorkbook saves a workbook with a small data block and one chart of
// the given type anchored at D2.
func writeChartWorkbook(t *testing.T, chartType excelize.ChartType) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Month")
	f.SetCellValue(sheetName, "B1", "Sales")
	f.SetCellValue(sheetName, "A2", "Jan")
	f.SetCellValue(sheetName, "B2", 10)
	f.SetCellValue(sheetName, "A3", "Feb")
	f.SetCellValue(sheetName, "B3", 20.5)
	f.SetCellValue(sheetName, "A4", "Mar")
	f.SetCellValue(sheetName, "B4", 30)

	err := f.AddChart(sheetName, "D2", &excelize.Chart{
		Type: chartType,
		Series: []excelize.ChartSeries{{
			Name:       "Sheet1!$B$1",
			Categories: "Sheet1!$A$2:$A$4",
			Values:     "Sheet1!$B$2:$B$4",
		}},
		Title: []excelize.RichTextRun{{Text: "Monthly Sales"}},
	})
	if err != nil {
		t.Fatalf("Failed to add chart: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "chart.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return tmpFile
}

func TestExtractCharts(t *testing.T) {
	path := writeChartWorkbook(t, excelize.Line)

	charts, err := ExtractCharts(path)
	if err != nil {
		t.Fatalf("ExtractCharts failed: %v", err)
	}

	sheetCharts := charts["Sheet1"]
	if len(sheetCharts) != 1 {
		t.Fatalf("Expected 1 chart on Sheet1, got %d", len(sheetCharts))
	}

	c := sheetCharts[0]
	if c.Kind != "Line" {
		t.Errorf("Expected kind Line, got %q", c.Kind)
	}
	if c.Title != "Monthly Sales" {
		t.Errorf("Expected title 'Monthly Sales', got %q", c.Title)
	}
	if !strings.HasPrefix(c.Name, "Chart") {
		t.Errorf("Expected drawing name starting with 'Chart', got %q", c.Name)
	}
	if c.W <= 0 || c.H <= 0 {
		t.Errorf("Expected positive chart size, got %dx%d", c.W, c.H)
	}
	if len(c.Series) != 1 {
		t.Fatalf("Expected 1 series, got %d", len(c.Series))
	}
	if c.Series[0].XRange != "Sheet1!$A$2:$A$4" {
		t.Errorf("Unexpected category range %q", c.Series[0].XRange)
	}
	if c.Series[0].YRange != "Sheet1!$B$2:$B$4" {
		t.Errorf("Unexpected value range %q", c.Series[0].YRange)
	}
}

func TestExtractChartsKinds(t *testing.T) {
	tests := []struct {
		chartType  excelize.ChartType
		kind       string
		horizontal bool
	}{
		{excelize.Col, "Bar", false},
		{excelize.Bar, "Bar", true},
		{excelize.Pie, "Pie", false},
		{excelize.Scatter, "XYScatter", false},
	}

	for _, tt := range tests {
		charts, err := ExtractCharts(writeChartWorkbook(t, tt.chartType))
		if err != nil {
			t.Fatalf("ExtractCharts(%v) failed: %v", tt.chartType, err)
		}
		if len(charts["Sheet1"]) != 1 {
			t.Fatalf("Expected 1 chart for type %v, got %d", tt.chartType, len(charts["Sheet1"]))
		}

		c := charts["Sheet1"][0]
		if c.Kind != tt.kind {
			t.Errorf("type %v: kind = %q, expected %q", tt.chartType, c.Kind, tt.kind)
		}
		if c.Horizontal != tt.horizontal {
			t.Errorf("type %v: horizontal = %v, expected %v", tt.chartType, c.Horizontal, tt.horizontal)
		}
		if len(c.Series) != 1 || c.Series[0].YRange != "Sheet1!$B$2:$B$4" {
			t.Errorf("type %v: unexpected series %+v", tt.chartType, c.Series)
		}
	}
}

func TestExtractChartsMissingFile(t *testing.T) {
	if _, err := ExtractCharts(filepath.Join(t.TempDir(), "missing.xlsx")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestParseChartXML(t *testing.T) {
	chartXML := `<c:chartSpace xmlns:c="c" xmlns:a="a">
<c:chart>
  <c:title><c:tx><c:rich><a:p><a:r><a:t>Temp</a:t></a:r><a:r><a:t>erature</a:t></a:r></a:p></c:rich></c:tx></c:title>
  <c:plotArea>
    <c:scatterChart>
      <c:ser>
        <c:tx><c:strRef><c:f>Data!$B$1</c:f><c:strCache><c:pt idx="0"><c:v>Celsius</c:v></c:pt></c:strCache></c:strRef></c:tx>
        <c:xVal><c:numRef><c:f>Data!$A$2:$A$5</c:f></c:numRef></c:xVal>
        <c:yVal><c:numRef><c:f>Data!$B$2:$B$5</c:f></c:numRef></c:yVal>
      </c:ser>
    </c:scatterChart>
    <c:valAx><c:scaling><c:max val="10"/><c:min val="0"/></c:scaling><c:axPos val="b"/></c:valAx>
    <c:valAx>
      <c:title><c:tx><c:rich><a:p><a:r><a:t>Degrees</a:t></a:r></a:p></c:rich></c:tx></c:title>
      <c:scaling><c:max val="40"/><c:min val="-10"/></c:scaling>
      <c:axPos val="l"/>
    </c:valAx>
  </c:plotArea>
  <c:legend><c:legendPos val="b"/></c:legend>
</c:chart>
</c:chartSpace>`

	spec := parseChartXML([]byte(chartXML), chartPosition{name: "Chart 7", width: 480, height: 288})

	if spec.Kind != "XYScatter" {
		t.Errorf("Expected kind XYScatter, got %q", spec.Kind)
	}
	if spec.Title != "Temperature" {
		t.Errorf("Expected title 'Temperature', got %q", spec.Title)
	}
	if spec.YAxisTitle != "Degrees" {
		t.Errorf("Expected y axis title 'Degrees', got %q", spec.YAxisTitle)
	}
	if len(spec.YAxisRange) != 2 || spec.YAxisRange[0] != -10 || spec.YAxisRange[1] != 40 {
		t.Errorf("Expected y axis range [-10 40], got %v", spec.YAxisRange)
	}
	if !spec.HasLegend || spec.LegendPosition != "b" {
		t.Errorf("Expected bottom legend, got %v %q", spec.HasLegend, spec.LegendPosition)
	}
	if spec.Name != "Chart 7" || spec.W != 480 || spec.H != 288 {
		t.Errorf("Unexpected position %q %dx%d", spec.Name, spec.W, spec.H)
	}
	if len(spec.Series) != 1 {
		t.Fatalf("Expected 1 series, got %d", len(spec.Series))
	}

	s := spec.Series[0]
	if s.Name != "Celsius" || s.NameRange != "Data!$B$1" {
		t.Errorf("Unexpected series name %q (%q)", s.Name, s.NameRange)
	}
	if s.XRange != "Data!$A$2:$A$5" || s.YRange != "Data!$B$2:$B$5" {
		t.Errorf("Unexpected series ranges %q %q", s.XRange, s.YRange)
	}
}

func TestParseChartXMLUnknownKind(t *testing.T) {
	spec := parseChartXML([]byte(`<c:chartSpace xmlns:c="c"><c:chart><c:plotArea/></c:chart></c:chartSpace>`), chartPosition{})
	if spec.Kind != "unknown" {
		t.Errorf("Expected kind 'unknown', got %q", spec.Kind)
	}
	if spec.HasLegend {
		t.Error("Expected no legend")
	}
}

func TestParseDrawingForCharts(t *testing.T) {
	drawingXML := `<xdr:wsDr xmlns:xdr="xdr" xmlns:a="a" xmlns:c="c" xmlns:r="r">
<xdr:twoCellAnchor>
  <xdr:from><xdr:col>3</xdr:col><xdr:colOff>0</xdr:colOff><xdr:row>1</xdr:row><xdr:rowOff>0</xdr:rowOff></xdr:from>
  <xdr:to><xdr:col>10</xdr:col><xdr:colOff>0</xdr:colOff><xdr:row>16</xdr:row><xdr:rowOff>0</xdr:rowOff></xdr:to>
  <xdr:graphicFrame>
    <xdr:nvGraphicFramePr><xdr:cNvPr id="2" name="Chart 1"/></xdr:nvGraphicFramePr>
    <xdr:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/></xdr:xfrm>
    <a:graphic><a:graphicData><c:chart r:id="rId1"/></a:graphicData></a:graphic>
  </xdr:graphicFrame>
</xdr:twoCellAnchor>
<xdr:absoluteAnchor>
  <xdr:pos x="0" y="0"/><xdr:ext cx="4572000" cy="2743200"/>
  <xdr:graphicFrame>
    <xdr:nvGraphicFramePr><xdr:cNvPr id="3" name="Chart 2"/></xdr:nvGraphicFramePr>
    <a:graphic><a:graphicData><c:chart r:id="rId2"/></a:graphicData></a:graphic>
  </xdr:graphicFrame>
</xdr:absoluteAnchor>
<xdr:twoCellAnchor>
  <xdr:sp><xdr:nvSpPr><xdr:cNvPr id="4" name="Rectangle 1"/></xdr:nvSpPr></xdr:sp>
</xdr:twoCellAnchor>
</xdr:wsDr>`

	anchors := parseDrawingForCharts([]byte(drawingXML))
	if len(anchors) != 2 {
		t.Fatalf("Expected 2 chart anchors, got %d", len(anchors))
	}

	if anchors[0].rID != "rId1" || anchors[0].pos.name != "Chart 1" {
		t.Errorf("Unexpected first anchor %+v", anchors[0])
	}
	if anchors[0].pos.width != 7*cellPixelsWidth || anchors[0].pos.height != 15*cellPixelsHeight {
		t.Errorf("Expected cell-based size, got %dx%d", anchors[0].pos.width, anchors[0].pos.height)
	}
	if anchors[1].rID != "rId2" || anchors[1].pos.width != 480 || anchors[1].pos.height != 288 {
		t.Errorf("Unexpected second anchor %+v", anchors[1])
	}
}

func TestRelsPathFor(t *testing.T) {
	tests := []struct {
		part     string
		expected string
	}{
		{"xl/worksheets/sheet1.xml", "xl/worksheets/_rels/sheet1.xml.rels"},
		{"xl/drawings/drawing1.xml", "xl/drawings/_rels/drawing1.xml.rels"},
		{"workbook.xml", "_rels/workbook.xml.rels"},
	}

	for _, tt := range tests {
		if result := relsPathFor(tt.part); result != tt.expected {
			t.Errorf("relsPathFor(%q) = %q, expected %q", tt.part, result, tt.expected)
		}
	}
}

func TestResolveRelativePath(t *testing.T) {
	tests := []struct {
		target   string
		baseDir  string
		expected string
	}{
		{"../drawings/drawing1.xml", "xl/drawings", "xl/drawings/drawing1.xml"},
		{"../charts/chart1.xml", "xl/charts", "xl/charts/chart1.xml"},
		{"/xl/charts/chart2.xml", "xl/charts", "xl/charts/chart2.xml"},
		{"worksheets/sheet1.xml", "xl", "xl/worksheets/sheet1.xml"},
	}

	for _, tt := range tests {
		if result := resolveRelativePath(tt.target, tt.baseDir); result != tt.expected {
			t.Errorf("resolveRelativePath(%q, %q) = %q, expected %q",
				tt.target, tt.baseDir, result, tt.expected)
		}
	}
}

func TestEMUToPixels(t *testing.T) {
	tests := []struct {
		emu      int64
		expected int
	}{
		{0, 0},
		{9525, 1},
		{914400, 96},
		{4572000, 480},
	}

	for _, tt := range tests {
		if result := EMUToPixels(tt.emu); result != tt.expected {
			t.Errorf("EMUToPixels(%d) = %d, expected %d", tt.emu, result, tt.expected)
		}
	}
}

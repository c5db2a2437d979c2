package parser

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ukaji3/chartjs-go/pkg/chartjs/models"
	"github.com/xuri/excelize/v2"
)

func TestParseRangeReference(t *testing.T) {
	tests := []struct {
		ref   string
		sheet string
		cells []string
	}{
		{"Sheet1!$A$1:$A$3", "Sheet1", []string{"A1", "A2", "A3"}},
		{"'My Data'!B2:C3", "My Data", []string{"B2", "C2", "B3", "C3"}},
		{"'Bob''s'!$C$5", "Bob's", []string{"C5"}},
		{"A3:A1", "", []string{"A1", "A2", "A3"}},
	}

	for _, tt := range tests {
		sheet, cells, err := ParseRangeReference(tt.ref)
		if err != nil {
			t.Errorf("ParseRangeReference(%q) failed: %v", tt.ref, err)
			continue
		}
		if sheet != tt.sheet {
			t.Errorf("ParseRangeReference(%q) sheet = %q, expected %q", tt.ref, sheet, tt.sheet)
		}
		if !reflect.DeepEqual(cells, tt.cells) {
			t.Errorf("ParseRangeReference(%q) cells = %v, expected %v", tt.ref, cells, tt.cells)
		}
	}
}

func TestParseRangeReferenceInvalid(t *testing.T) {
	refs := []string{
		"",
		"Sheet1!A:A",
		"Sheet1!A1:B2:C3",
		"Sheet1!1A",
		"Sheet1!A1:XFD1048576",
		"Sheet1!$B$524289:$A$1",
	}
	for _, ref := range refs {
		if _, _, err := ParseRangeReference(ref); !errors.Is(err, ErrInvalidReference) {
			t.Errorf("ParseRangeReference(%q) error = %v, expected ErrInvalidReference", ref, err)
		}
	}
}

func TestReadRange(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", 100)
	f.SetCellValue(sheetName, "A2", 200.5)
	f.SetCellValue(sheetName, "A4", "n/a")

	values, err := ReadRange(f, "Sheet1!$A$1:$A$4")
	if err != nil {
		t.Fatalf("ReadRange failed: %v", err)
	}

	expected := []models.NumberString{"100", "200.5", "NaN", "n/a"}
	if !reflect.DeepEqual(values, expected) {
		t.Errorf("ReadRange = %v, expected %v", values, expected)
	}

	if _, err := ReadRange(f, "A1:A4"); !errors.Is(err, ErrInvalidReference) {
		t.Errorf("Expected ErrInvalidReference for reference without sheet, got %v", err)
	}
	if _, err := ReadRange(f, "Missing!A1"); err == nil {
		t.Error("Expected error for missing sheet")
	}
}

func TestReadRangeText(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "Jan")
	f.SetCellValue("Sheet1", "B1", "Feb")

	labels, err := ReadRangeText(f, "Sheet1!A1:C1")
	if err != nil {
		t.Fatalf("ReadRangeText failed: %v", err)
	}
	if !reflect.DeepEqual(labels, []string{"Jan", "Feb", ""}) {
		t.Errorf("ReadRangeText = %v", labels)
	}
}

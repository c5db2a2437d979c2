package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/chartjs-go/pkg/chartjs/models"
	"github.com/xuri/excelize/v2"
)

// ErrInvalidReference is returned for range references that cannot be resolved
// to a sheet and a block of cells.
var ErrInvalidReference = errors.New("invalid range reference")

// maxRangeCells is the largest number of cells a reference may cover, one
// full worksheet column.
const maxRangeCells = 1 << 20

// ParseRangeReference parses a reference such as 'Sheet 1'!$A$1:$B$3 and
// returns the sheet name and the cell names it covers in row-major order.
// A reference without a sheet part returns an empty sheet name.
func ParseRangeReference(ref string) (string, []string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", nil, fmt.Errorf("%w: empty", ErrInvalidReference)
	}

	var sheet string
	rangeStr := ref
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheet = ref[:idx]
		rangeStr = ref[idx+1:]
		if strings.HasPrefix(sheet, "'") && strings.HasSuffix(sheet, "'") && len(sheet) >= 2 {
			sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
		}
	}

	rangeStr = strings.ReplaceAll(rangeStr, "$", "")
	parts := strings.Split(rangeStr, ":")
	if len(parts) > 2 {
		return "", nil, fmt.Errorf("%w: %q", ErrInvalidReference, ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return "", nil, fmt.Errorf("%w: %q: %v", ErrInvalidReference, ref, err)
	}
	endCol, endRow := startCol, startRow
	if len(parts) == 2 {
		if endCol, endRow, err = excelize.CellNameToCoordinates(parts[1]); err != nil {
			return "", nil, fmt.Errorf("%w: %q: %v", ErrInvalidReference, ref, err)
		}
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}
	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}

	count := (endCol - startCol + 1) * (endRow - startRow + 1)
	if count > maxRangeCells {
		return "", nil, fmt.Errorf("%w: %q covers %d cells, limit is %d", ErrInvalidReference, ref, count, maxRangeCells)
	}

	cells := make([]string, 0, count)
	for row := startRow; row <= endRow; row++ {
		for col := startCol; col <= endCol; col++ {
			name, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return "", nil, fmt.Errorf("%w: %q: %v", ErrInvalidReference, ref, err)
			}
			cells = append(cells, name)
		}
	}

	return sheet, cells, nil
}

// ReadRange reads the raw values of a range as number strings. Blank cells
// become the "NaN" gap marker so that series keep their length.
func ReadRange(f *excelize.File, ref string) ([]models.NumberString, error) {
	values, err := readCells(f, ref, true)
	if err != nil {
		return nil, err
	}

	result := make([]models.NumberString, len(values))
	for i, v := range values {
		if strings.TrimSpace(v) == "" {
			v = "NaN"
		}
		result[i] = models.NumberString(v)
	}
	return result, nil
}

// ReadRangeText reads the formatted values of a range, e.g. category labels.
func ReadRangeText(f *excelize.File, ref string) ([]string, error) {
	return readCells(f, ref, false)
}

func readCells(f *excelize.File, ref string, raw bool) ([]string, error) {
	sheet, cells, err := ParseRangeReference(ref)
	if err != nil {
		return nil, err
	}
	if sheet == "" {
		return nil, fmt.Errorf("%w: %q has no sheet", ErrInvalidReference, ref)
	}

	values := make([]string, len(cells))
	for i, cell := range cells {
		v, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: raw})
		if err != nil {
			return nil, fmt.Errorf("read %s!%s: %w", sheet, cell, err)
		}
		values[i] = v
	}
	return values, nil
}

package parser

import (
	"fmt"

	"github.com/ukaji3/chartjs-go/pkg/chartjs/models"
	"github.com/xuri/excelize/v2"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	// DensityMin is the minimum share of non-empty cells in the bounding box.
	DensityMin float64
	// CoverageMin is the minimum share of rows in the bounding box holding data.
	CoverageMin float64
	// MinNonemptyCells is the minimum number of non-empty cells.
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		CoverageMin:      0.2,
		MinNonemptyCells: 3,
	}
}

// DetectTables detects table-like regions in a sheet.
// Returns cell ranges (e.g., "A1:D10") that can feed a chart.
func DetectTables(f *excelize.File, sheetName string, params TableDetectionParams) ([]string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	b, ok := dataBounds(rows)
	if !ok {
		return nil, nil
	}

	nonEmpty, filledRows := b.count(rows)
	if nonEmpty < params.MinNonemptyCells {
		return nil, nil
	}
	if float64(nonEmpty)/float64(b.cells()) < params.DensityMin {
		return nil, nil
	}
	if float64(filledRows)/float64(b.maxRow-b.minRow+1) < params.CoverageMin {
		return nil, nil
	}

	startCell, _ := excelize.CoordinatesToCellName(b.minCol+1, b.minRow+1)
	endCell, _ := excelize.CoordinatesToCellName(b.maxCol+1, b.maxRow+1)

	return []string{fmt.Sprintf("%s:%s", startCell, endCell)}, nil
}

// TableValues reads a detected table as rows of text values. Blank cells are
// empty strings.
func TableValues(f *excelize.File, sheetName, ref string) ([][]models.NumberString, error) {
	_, cells, err := ParseRangeReference(ref)
	if err != nil {
		return nil, err
	}

	var result [][]models.NumberString
	lastRow := -1
	for _, cell := range cells {
		_, row, err := excelize.CellNameToCoordinates(cell)
		if err != nil {
			return nil, err
		}
		v, err := f.GetCellValue(sheetName, cell, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("read %s!%s: %w", sheetName, cell, err)
		}
		if row != lastRow {
			result = append(result, nil)
			lastRow = row
		}
		result[len(result)-1] = append(result[len(result)-1], models.NumberString(v))
	}

	return result, nil
}

// bounds is the zero-based bounding box of non-empty cells.
type bounds struct {
	minRow, maxRow, minCol, maxCol int
}

func (b bounds) cells() int {
	return (b.maxRow - b.minRow + 1) * (b.maxCol - b.minCol + 1)
}

// count returns the non-empty cells and the rows holding at least one of them.
func (b bounds) count(rows [][]string) (nonEmpty, filledRows int) {
	for rowIdx := b.minRow; rowIdx <= b.maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		filled := false
		for colIdx := b.minCol; colIdx <= b.maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				nonEmpty++
				filled = true
			}
		}
		if filled {
			filledRows++
		}
	}
	return
}

// dataBounds finds the bounding box of non-empty cells.
func dataBounds(rows [][]string) (bounds, bool) {
	b := bounds{minRow: -1, maxRow: -1, minCol: -1, maxCol: -1}

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if b.minRow < 0 {
				b.minRow = rowIdx
			}
			b.maxRow = rowIdx
			if b.minCol < 0 || colIdx < b.minCol {
				b.minCol = colIdx
			}
			if colIdx > b.maxCol {
				b.maxCol = colIdx
			}
		}
	}

	return b, b.minRow >= 0
}

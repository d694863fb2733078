package tableio

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/SubhashUFlorida/millipede-bar/junction"
	"github.com/SubhashUFlorida/millipede-bar/waveform"
)

// SheetName is the worksheet written by Write.
const SheetName = "ana_1D"

// readXLSX returns the rows of the first worksheet.
func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("tableio: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s has no worksheets", waveform.ErrInvalidFormat, path)
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("tableio: %s: %w", path, err)
	}
	return rows, nil
}

func writeXLSX(path string, rows []junction.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("tableio: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("tableio: %w", err)
	}

	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("tableio: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("tableio: %w", err)
		}
		values := []any{
			row.Time(),
			cellValue(row.Incident),
			cellValue(row.Reflected),
			cellValue(row.Transmitted),
		}
		if err := sw.SetRow(cell, values); err != nil {
			return fmt.Errorf("tableio: %w", err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("tableio: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("tableio: %w", err)
	}
	return nil
}

// cellValue leaves absent values as empty cells.
func cellValue(v junction.Value) any {
	if !v.Valid {
		return nil
	}
	return v.V
}

package tableio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/SubhashUFlorida/millipede-bar/junction"
)

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tableio: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("tableio: %s: %w", path, err)
	}
	return rows, nil
}

func writeCSV(path string, rows []junction.Row) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tableio: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("tableio: %w", cerr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("tableio: %w", err)
	}
	for _, row := range rows {
		record := []string{
			formatFloat(row.Time()),
			formatValue(row.Incident),
			formatValue(row.Reflected),
			formatValue(row.Transmitted),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("tableio: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("tableio: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatValue renders an absent value as an empty cell.
func formatValue(v junction.Value) string {
	if !v.Valid {
		return ""
	}
	return formatFloat(v.V)
}

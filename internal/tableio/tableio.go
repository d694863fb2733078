// Package tableio reads incident waveform tables and writes split-wave
// results, as CSV or XLSX.
package tableio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/SubhashUFlorida/millipede-bar/junction"
	"github.com/SubhashUFlorida/millipede-bar/waveform"
)

// Supported file extensions.
const (
	ExtCSV  = ".csv"
	ExtXLSX = ".xlsx"
)

// OutputSuffix is appended to the incident file stem for result files.
const OutputSuffix = "_ana_1D"

// ErrUnsupportedExtension is returned for files that are neither CSV nor XLSX.
var ErrUnsupportedExtension = errors.New("tableio: extension must be .csv or .xlsx")

// Header is the column header of result tables.
var Header = []string{"Time", "Incident", "Reflected", "Transmitted"}

// ReadIncident reads the data rows of an incident table. The first row is a
// header and is skipped; every returned row has at least two cells, with
// missing cells as empty strings.
func ReadIncident(path string) ([][]string, error) {
	var (
		rows [][]string
		err  error
	)
	switch ext(path) {
	case ExtCSV:
		rows, err = readCSV(path)
	case ExtXLSX:
		rows, err = readXLSX(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExtension, path)
	}
	if err != nil {
		return nil, err
	}
	return dataRows(path, rows)
}

// Write stores rows at path in the format given by its extension.
func Write(path string, rows []junction.Row) error {
	switch ext(path) {
	case ExtCSV:
		return writeCSV(path, rows)
	case ExtXLSX:
		return writeXLSX(path, rows)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedExtension, path)
	}
}

// OutputPath returns the result path for an incident file: same directory,
// stem plus OutputSuffix, and the given extension.
func OutputPath(incidentPath, extension string) string {
	dir := filepath.Dir(incidentPath)
	base := filepath.Base(incidentPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, stem+OutputSuffix+extension)
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

func dataRows(path string, rows [][]string) ([][]string, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", waveform.ErrInvalidFormat, path)
	}
	if len(rows[0]) < 2 {
		return nil, fmt.Errorf("%w: %s has %d columns, need Time and Incident",
			waveform.ErrInvalidFormat, path, len(rows[0]))
	}

	data := rows[1:]
	for i, row := range data {
		for len(row) < 2 {
			row = append(row, "")
		}
		data[i] = row
	}
	return data, nil
}

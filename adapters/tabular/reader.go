// Package tabular reads measurement count tables from delimited text
// files and Excel workbooks.
package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"collapseviz/domain/core"
	"collapseviz/domain/measurement"
)

// Required header columns.
const (
	LabelColumn = "Measurement"
	CountColumn = "Count"
)

// DataReader loads a measurement table from a CSV or XLSX file,
// selected by file extension.
type DataReader struct {
	filePath string
	fileType string // "csv" or "xlsx"
}

// NewDataReader creates a reader for the given file path.
func NewDataReader(filePath string) *DataReader {
	fileType := "csv"
	if strings.ToLower(filepath.Ext(filePath)) == ".xlsx" {
		fileType = "xlsx"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// ReadTable reads the file into a measurement table, validating the
// header schema, count values, and label uniqueness. Record order is
// file row order.
func (r *DataReader) ReadTable() (measurement.Table, error) {
	if _, err := os.Stat(r.filePath); err != nil {
		return measurement.Table{}, fmt.Errorf("input file not found: %s", r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "xlsx":
		rows, err = r.readWorkbookRows()
	default:
		rows, err = r.readCSVRows()
	}
	if err != nil {
		return measurement.Table{}, err
	}

	return buildTable(rows)
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // header validation happens downstream
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

func (r *DataReader) readWorkbookRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	return rows, nil
}

// buildTable turns raw rows (header first) into a validated table.
func buildTable(rows [][]string) (measurement.Table, error) {
	if len(rows) == 0 {
		return measurement.Table{}, core.NewSchemaError([]string{LabelColumn, CountColumn})
	}

	labelIdx, countIdx, err := locateColumns(rows[0])
	if err != nil {
		return measurement.Table{}, err
	}

	records := make([]measurement.Record, 0, len(rows)-1)
	seen := make(map[string]bool, len(rows)-1)

	for i, row := range rows[1:] {
		fileRow := i + 2 // 1-based, after the header
		if isBlankRow(row) {
			continue
		}
		if labelIdx >= len(row) || countIdx >= len(row) {
			return measurement.Table{}, core.NewParseError(fileRow, "", fmt.Errorf("row has %d columns", len(row)))
		}

		label := strings.TrimSpace(row[labelIdx])
		count, err := parseCount(row[countIdx])
		if err != nil {
			return measurement.Table{}, core.NewParseError(fileRow, row[countIdx], err)
		}
		if seen[label] {
			return measurement.Table{}, core.NewDuplicateLabelError(label, fileRow)
		}
		seen[label] = true

		records = append(records, measurement.Record{Label: label, Count: count})
	}

	return measurement.NewTable(records), nil
}

func locateColumns(header []string) (labelIdx, countIdx int, err error) {
	labelIdx, countIdx = -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case LabelColumn:
			labelIdx = i
		case CountColumn:
			countIdx = i
		}
	}

	var missing []string
	if labelIdx < 0 {
		missing = append(missing, LabelColumn)
	}
	if countIdx < 0 {
		missing = append(missing, CountColumn)
	}
	if len(missing) > 0 {
		return 0, 0, core.NewSchemaError(missing)
	}
	return labelIdx, countIdx, nil
}

func parseCount(cell string) (int, error) {
	count, err := strconv.Atoi(strings.TrimSpace(cell))
	if err != nil {
		return 0, err
	}
	if count < 0 {
		return 0, fmt.Errorf("negative count %d", count)
	}
	return count, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

package imports

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Canonical spreadsheet column names. Header matching is case- and
// whitespace-insensitive, so "order numb\ner" (a header wrapped across
// two lines by the exporting tool) still resolves to OrderNumber.
const (
	ColumnCustomer = "Customer"
	ColumnProduct  = "Product"
	ColumnQuantity = "Quantity"
	ColumnOrderID  = "OrderNumber"
)

// Row is one spreadsheet record, keyed by the header text exactly as it
// appeared in the file.
type Row map[string]string

// normalizeHeader collapses case and all whitespace, including the
// newlines spreadsheet tools insert when wrapping header cells.
func normalizeHeader(h string) string {
	return strings.ToLower(strings.Join(strings.Fields(h), ""))
}

// Field returns the value under the header matching the canonical column
// name, tolerating casing and embedded whitespace. When no header
// matches, it falls back to the literal canonical key.
func (r Row) Field(canonical string) string {
	want := normalizeHeader(canonical)
	for k, v := range r {
		if normalizeHeader(k) == want {
			return v
		}
	}
	return r[canonical]
}

// ReadXLSX decodes the first sheet of an Excel workbook into rows. The
// first record is taken as the header row.
func ReadXLSX(r io.Reader) ([]Row, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	records, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	return rowsFromRecords(records), nil
}

// ReadCSV decodes a CSV export into rows, first record as headers.
func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // exports often have ragged trailing columns
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	return rowsFromRecords(records), nil
}

func rowsFromRecords(records [][]string) []Row {
	if len(records) == 0 {
		return nil
	}

	headers := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(Row, len(headers))
		empty := true
		for i, header := range headers {
			if i >= len(rec) {
				break
			}
			row[header] = rec[i]
			if strings.TrimSpace(rec[i]) != "" {
				empty = false
			}
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	return rows
}
